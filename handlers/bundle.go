package handlers

// HandlerBundle carries the assembled handlers into route registration.
type HandlerBundle struct {
	Availability *AvailabilityHandler
	Calendar     *CalendarHandler
	Booking      *BookingHandler
	Inquiry      *InquiryHandler
}
