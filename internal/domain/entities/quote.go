package entities

// LineItem is one resolved add-on in a quote breakdown.
type LineItem struct {
	ID    int     `json:"id"`
	Label string  `json:"label"`
	Fee   float64 `json:"fee"`
}

// Quote is the price breakdown derived from an IntakeRecord.
//
// Quotes are recomputed on every render and never stored.
type Quote struct {
	Record           IntakeRecord `json:"record"`
	Multiplier       float64      `json:"multiplier"`
	BaseCost         float64      `json:"baseCost"`
	ItemizedServices []LineItem   `json:"itemizedServices"`
	AddOnTotal       float64      `json:"addOnTotal"`
	TotalCost        float64      `json:"totalCost"`
}

// ServiceLabels returns the display labels of the resolved add-ons.
func (q Quote) ServiceLabels() []string {
	labels := make([]string, 0, len(q.ItemizedServices))
	for _, item := range q.ItemizedServices {
		if s, ok := LookupService(item.ID); ok {
			labels = append(labels, s.DisplayLabel())
			continue
		}
		labels = append(labels, item.Label)
	}
	return labels
}
