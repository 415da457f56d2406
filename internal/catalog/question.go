package catalog

// Option is a single answer choice on the five-point agreement scale.
type Option struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Question is one catalog entry. Questions are immutable after load;
// the core only ever reads them.
type Question struct {
	ID           string   `json:"id"`
	Axis         Axis     `json:"axis"`
	Text         string   `json:"text"`
	Options      []Option `json:"options"`
	Priority     int      `json:"priority"`
	ReverseCoded bool     `json:"reverse_coded"`
}

// LikertOptions returns the standard five-point agreement scale used by
// every question in the bank.
func LikertOptions() []Option {
	return []Option{
		{Label: "Strongly disagree", Value: 1},
		{Label: "Disagree", Value: 2},
		{Label: "Neutral", Value: 3},
		{Label: "Agree", Value: 4},
		{Label: "Strongly agree", Value: 5},
	}
}
