package reminder

// NextOccurrence builds the create input for the successor of a completed
// repeating reminder. The draft carries every field forward except state:
// the successor starts pending and not notified, due one frequency period
// after the completed occurrence.
func NextOccurrence(r Reminder) (CreateInput, error) {
	if !r.Repeat.IsPresent {
		return CreateInput{}, ErrFrequencyNotSet
	}
	return CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Kind:        r.Kind,
		Entity:      r.Entity,
		At:          r.Repeat.Value.NextFrom(r.At),
		Priority:    r.Priority,
		AdminID:     r.AdminID,
		Status:      StatusPending,
		Repeat:      r.Repeat,
		Notified:    false,
		Notes:       r.Notes,
	}, nil
}
