package complaint

// ListFilter provides optional filters for listing complaints. A nil field
// means "any"; supplied filters compose with logical AND.
type ListFilter struct {
	Status     *Status
	Priority   *Priority
	ResidentID *int64
}
