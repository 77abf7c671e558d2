package campaign

// Outcome records the result of one recipient's send.
type Outcome struct {
	Recipient string // Destination address
	Template  int    // 1-based template index assigned to this recipient
	ID        string // Provider message ID, empty on failure
	Err       error  // Send error, nil on success
}

// Summary aggregates a completed campaign run.
type Summary struct {
	RunID      string      // Identifier attached to every log line of the run
	Total      int         // Number of recipients processed
	Sent       int         // Successful sends
	Failed     int         // Failed sends
	ByTemplate map[int]int // Successful sends per 1-based template index
	Outcomes   []Outcome   // Per-recipient results, in send order
}

func (s *Summary) record(o Outcome) {
	s.Outcomes = append(s.Outcomes, o)
	if o.Err != nil {
		s.Failed++
		return
	}
	s.Sent++
	s.ByTemplate[o.Template]++
}
