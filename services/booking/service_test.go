package booking

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	availabilityRepo "podium/database/repository/availability"
	bookingRepo "podium/database/repository/booking"
	"podium/models"
	"podium/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore backs both repositories with one mutex so the booking
// transaction semantics (compare-and-swap plus insert as one unit) hold
// under the concurrency tests. slotView and bookingView expose it through
// the two repository interfaces.
type memStore struct {
	mu       sync.Mutex
	slots    map[string]*models.Slot
	bookings map[string]*models.Booking
}

type slotView struct{ *memStore }

type bookingView struct{ *memStore }

func newMemStore() *memStore {
	return &memStore{
		slots:    make(map[string]*models.Slot),
		bookings: make(map[string]*models.Booking),
	}
}

func (m *memStore) addSlot(slot models.Slot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := slot
	m.slots[slot.ID] = &cp
}

func (m *memStore) slotStatus(slotID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots[slotID].Status
}

func (v slotView) Create(ctx context.Context, slot *models.Slot) error {
	v.addSlot(*slot)
	return nil
}

func (v slotView) GetByID(ctx context.Context, slotID string) (*models.Slot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	slot, ok := v.slots[slotID]
	if !ok {
		return nil, availabilityRepo.ErrNotFound
	}
	cp := *slot
	return &cp, nil
}

func (v slotView) GetBySpeakerAndID(ctx context.Context, speakerID, slotID string) (*models.Slot, error) {
	slot, err := v.GetByID(ctx, slotID)
	if err != nil || slot.SpeakerID != speakerID {
		return nil, availabilityRepo.ErrNotFound
	}
	return slot, nil
}

func (v slotView) DeleteAvailable(ctx context.Context, speakerID, slotID string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	slot, ok := v.slots[slotID]
	if !ok || slot.SpeakerID != speakerID || slot.Status != models.SlotAvailable {
		return availabilityRepo.ErrNotFound
	}
	delete(v.slots, slotID)
	return nil
}

func (v slotView) GetBySpeakerAndDate(ctx context.Context, speakerID, date string) ([]models.Slot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	var out []models.Slot
	for _, slot := range v.slots {
		if slot.SpeakerID == speakerID && slot.Date == date {
			out = append(out, *slot)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (v slotView) ListFromDate(ctx context.Context, speakerID, fromDate string) ([]models.Slot, error) {
	return nil, nil
}

func (v slotView) ExistsOverlapping(ctx context.Context, speakerID, date, startTime, endTime string) (bool, error) {
	return false, nil
}

func (v slotView) DistinctDates(ctx context.Context, speakerID string) ([]string, error) {
	return nil, nil
}

func (v slotView) EnsureIndexes() error { return nil }

func (v bookingView) BookSlot(ctx context.Context, slotID, slotStatus string, booking *models.Booking) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	slot, ok := v.slots[slotID]
	if !ok || slot.Status != models.SlotAvailable {
		return bookingRepo.ErrSlotUnavailable
	}
	slot.Status = slotStatus
	cp := *booking
	v.bookings[booking.ID] = &cp
	return nil
}

func (v bookingView) Cancel(ctx context.Context, bookingID, slotID string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	booking, ok := v.bookings[bookingID]
	if !ok || (booking.Status != models.BookingPending && booking.Status != models.BookingConfirmed) {
		return bookingRepo.ErrStateMismatch
	}
	booking.Status = models.BookingCancelled
	if slot, ok := v.slots[slotID]; ok {
		slot.Status = models.SlotAvailable
	}
	return nil
}

func (v bookingView) Confirm(ctx context.Context, bookingID, slotID string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	booking, ok := v.bookings[bookingID]
	if !ok || booking.Status != models.BookingPending {
		return bookingRepo.ErrStateMismatch
	}
	slot, ok := v.slots[slotID]
	if !ok || slot.Status != models.SlotPending {
		return bookingRepo.ErrStateMismatch
	}
	booking.Status = models.BookingConfirmed
	slot.Status = models.SlotBooked
	return nil
}

func (v bookingView) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	booking, ok := v.bookings[bookingID]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	cp := *booking
	return &cp, nil
}

func (v bookingView) ListBySpeaker(ctx context.Context, speakerID string) ([]models.Booking, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	var out []models.Booking
	for _, booking := range v.bookings {
		if booking.SpeakerID == speakerID {
			out = append(out, *booking)
		}
	}
	return out, nil
}

func (v bookingView) ListByOrganizer(ctx context.Context, organizerID string) ([]models.Booking, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	var out []models.Booking
	for _, booking := range v.bookings {
		if booking.OrganizerID == organizerID {
			out = append(out, *booking)
		}
	}
	return out, nil
}

func (v bookingView) EnsureIndexes() error { return nil }

// fakePolicy marks speakers that require approval before confirmation.
type fakePolicy struct {
	approvalRequired map[string]bool
}

func (p *fakePolicy) IsInstantBook(ctx context.Context, speakerID string) (bool, error) {
	return !p.approvalRequired[speakerID], nil
}

// fakeNotifier records emitted events.
type fakeNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *fakeNotifier) record(kind string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, kind)
	return nil
}

func (n *fakeNotifier) BookingCreated(ctx context.Context, ev models.BookingEvent) error {
	return n.record("created")
}

func (n *fakeNotifier) BookingConfirmed(ctx context.Context, ev models.BookingEvent) error {
	return n.record("confirmed")
}

func (n *fakeNotifier) BookingCancelled(ctx context.Context, ev models.BookingEvent) error {
	return n.record("cancelled")
}

func (n *fakeNotifier) InquirySubmitted(ctx context.Context, ev models.InquiryEvent) error {
	return n.record("inquiry")
}

func (n *fakeNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.events...)
}

func newBookingService(approvalRequired ...string) (*DefaultBookingService, *memStore, *fakeNotifier) {
	store := newMemStore()
	notifier := &fakeNotifier{}
	policy := &fakePolicy{approvalRequired: make(map[string]bool)}
	for _, id := range approvalRequired {
		policy.approvalRequired[id] = true
	}
	svc := &DefaultBookingService{
		Bookings:     bookingView{store},
		Slots:        slotView{store},
		Policy:       policy,
		Notification: notifier,
	}
	return svc, store, notifier
}

func availableSlot(id, speakerID string) models.Slot {
	return models.Slot{
		ID:        id,
		SpeakerID: speakerID,
		Date:      time.Now().AddDate(0, 0, 7).Format(utils.DateLayout),
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    models.SlotAvailable,
	}
}

func eventDetails() models.EventDetails {
	attendees := 120
	return models.EventDetails{
		Name:      "Engineering Summit",
		Type:      "conference",
		Location:  "Berlin",
		Attendees: &attendees,
	}
}

func TestAttemptBookingInstantBook(t *testing.T) {
	svc, store, notifier := newBookingService()
	store.addSlot(availableSlot("slot-1", "speaker-1"))
	ctx := context.Background()

	bk, err := svc.AttemptBooking(ctx, "org-1", "slot-1", eventDetails(), models.ContactSnapshot{
		Name: "Ada", Email: "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, bk.Status)
	assert.Equal(t, "slot-1", bk.AvailabilityID)
	assert.Equal(t, "speaker-1", bk.SpeakerID)
	assert.Equal(t, "Ada", bk.OrganizerName)
	assert.Equal(t, models.SlotBooked, store.slotStatus("slot-1"))
	assert.Equal(t, []string{"created"}, notifier.all())
}

func TestAttemptBookingApprovalRequired(t *testing.T) {
	svc, store, _ := newBookingService("speaker-1")
	store.addSlot(availableSlot("slot-1", "speaker-1"))

	bk, err := svc.AttemptBooking(context.Background(), "org-1", "slot-1", eventDetails(), models.ContactSnapshot{})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, bk.Status)
	assert.Equal(t, models.SlotPending, store.slotStatus("slot-1"))
}

func TestAttemptBookingSlotNotFound(t *testing.T) {
	svc, _, _ := newBookingService()

	_, err := svc.AttemptBooking(context.Background(), "org-1", "ghost", eventDetails(), models.ContactSnapshot{})
	var notFoundErr *utils.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestAttemptBookingSlotTaken(t *testing.T) {
	svc, store, _ := newBookingService()
	slot := availableSlot("slot-1", "speaker-1")
	slot.Status = models.SlotBooked
	store.addSlot(slot)

	_, err := svc.AttemptBooking(context.Background(), "org-1", "slot-1", eventDetails(), models.ContactSnapshot{})
	var unavailableErr *utils.SlotUnavailableError
	require.ErrorAs(t, err, &unavailableErr)
}

func TestAttemptBookingValidation(t *testing.T) {
	svc, store, notifier := newBookingService()
	store.addSlot(availableSlot("slot-1", "speaker-1"))
	ctx := context.Background()

	negative := -3
	tests := []struct {
		name    string
		details models.EventDetails
	}{
		{"missing event name", models.EventDetails{Location: "Berlin"}},
		{"blank event name", models.EventDetails{Name: "   ", Location: "Berlin"}},
		{"missing location", models.EventDetails{Name: "Summit"}},
		{"negative attendees", models.EventDetails{Name: "Summit", Location: "Berlin", Attendees: &negative}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AttemptBooking(ctx, "org-1", "slot-1", tt.details, models.ContactSnapshot{})
			var validationErr *utils.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}

	// A failed validation leaves no trace: slot untouched, no booking, no event.
	assert.Equal(t, models.SlotAvailable, store.slotStatus("slot-1"))
	bookings, err := svc.ListForSpeaker(ctx, "speaker-1")
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.Empty(t, notifier.all())
}

func TestConcurrentAttemptsExactlyOneWins(t *testing.T) {
	svc, store, _ := newBookingService()
	store.addSlot(availableSlot("slot-1", "speaker-1"))
	ctx := context.Background()

	const attempts = 32
	var wg sync.WaitGroup
	results := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.AttemptBooking(ctx, "org-1", "slot-1", eventDetails(), models.ContactSnapshot{})
			results[i] = err
		}(i)
	}
	wg.Wait()

	var wins, losses int
	for _, err := range results {
		if err == nil {
			wins++
			continue
		}
		var unavailableErr *utils.SlotUnavailableError
		require.ErrorAs(t, err, &unavailableErr)
		losses++
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, losses)

	bookings, err := svc.ListForSpeaker(ctx, "speaker-1")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, models.SlotBooked, store.slotStatus("slot-1"))
}

func TestCancelThenRebook(t *testing.T) {
	svc, store, notifier := newBookingService()
	store.addSlot(availableSlot("slot-1", "speaker-1"))
	ctx := context.Background()

	first, err := svc.AttemptBooking(ctx, "org-1", "slot-1", eventDetails(), models.ContactSnapshot{})
	require.NoError(t, err)

	require.NoError(t, svc.CancelBooking(ctx, "org-1", first.ID))
	assert.Equal(t, models.SlotAvailable, store.slotStatus("slot-1"))

	// A different organizer can claim the freed slot.
	second, err := svc.AttemptBooking(ctx, "org-2", "slot-1", eventDetails(), models.ContactSnapshot{})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, models.SlotBooked, store.slotStatus("slot-1"))

	assert.Equal(t, []string{"created", "cancelled", "created"}, notifier.all())
}

func TestCancelBookingInvalidStates(t *testing.T) {
	svc, store, _ := newBookingService()
	store.addSlot(availableSlot("slot-1", "speaker-1"))
	ctx := context.Background()

	bk, err := svc.AttemptBooking(ctx, "org-1", "slot-1", eventDetails(), models.ContactSnapshot{})
	require.NoError(t, err)
	require.NoError(t, svc.CancelBooking(ctx, "org-1", bk.ID))

	// Cancelling twice is an illegal transition.
	err = svc.CancelBooking(ctx, "org-1", bk.ID)
	var stateErr *utils.InvalidStateError
	require.ErrorAs(t, err, &stateErr)

	// Unknown booking.
	err = svc.CancelBooking(ctx, "org-1", "ghost")
	var notFoundErr *utils.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestConfirmBooking(t *testing.T) {
	svc, store, notifier := newBookingService("speaker-1")
	store.addSlot(availableSlot("slot-1", "speaker-1"))
	ctx := context.Background()

	bk, err := svc.AttemptBooking(ctx, "org-1", "slot-1", eventDetails(), models.ContactSnapshot{})
	require.NoError(t, err)
	require.Equal(t, models.BookingPending, bk.Status)

	// Only the slot's own speaker can confirm.
	err = svc.ConfirmBooking(ctx, "speaker-2", bk.ID)
	var notFoundErr *utils.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)

	require.NoError(t, svc.ConfirmBooking(ctx, "speaker-1", bk.ID))
	assert.Equal(t, models.SlotBooked, store.slotStatus("slot-1"))

	confirmed, err := svc.GetBooking(ctx, bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, confirmed.Status)

	// Confirming a confirmed booking is an illegal transition.
	err = svc.ConfirmBooking(ctx, "speaker-1", bk.ID)
	var stateErr *utils.InvalidStateError
	require.ErrorAs(t, err, &stateErr)

	assert.Equal(t, []string{"created", "confirmed"}, notifier.all())
}

func TestListForOrganizer(t *testing.T) {
	svc, store, _ := newBookingService()
	store.addSlot(availableSlot("slot-1", "speaker-1"))
	store.addSlot(availableSlot("slot-2", "speaker-2"))
	ctx := context.Background()

	_, err := svc.AttemptBooking(ctx, "org-1", "slot-1", eventDetails(), models.ContactSnapshot{})
	require.NoError(t, err)
	_, err = svc.AttemptBooking(ctx, "org-2", "slot-2", eventDetails(), models.ContactSnapshot{})
	require.NoError(t, err)

	mine, err := svc.ListForOrganizer(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "slot-1", mine[0].AvailabilityID)
}
