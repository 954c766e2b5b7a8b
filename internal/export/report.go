package export

import "appshot/internal/errcode"

// ItemResult records the outcome of one frame in the batch.
type ItemResult struct {
	Name   string       `json:"name"`
	Locale string       `json:"locale"`
	Device string       `json:"device"`
	Index  int          `json:"index"`
	Code   errcode.Code `json:"code"`
	Err    string       `json:"error,omitempty"`
}

// Report summarizes a batch export run.
type Report struct {
	Total    int          `json:"total"`
	Rendered int          `json:"rendered"`
	Skipped  int          `json:"skipped"`
	Failed   int          `json:"failed"`
	Items    []ItemResult `json:"items"`
}

func (r *Report) add(item ItemResult) {
	r.Items = append(r.Items, item)
	switch item.Code {
	case errcode.OK:
		r.Rendered++
	case errcode.DeviceUnknown:
		r.Skipped++
	default:
		r.Failed++
	}
}
