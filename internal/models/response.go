package models

const NoResultsMessage = "Tidak ada hasil ditemukan. Silakan coba dengan kriteria pencarian yang berbeda."

type SearchMetadata struct {
	TotalResults int   `json:"total_results"`
	SearchTimeMs int64 `json:"search_time_ms"`
}

type SearchResponse[T any] struct {
	SearchID string            `json:"search_id"`
	Mode     Mode              `json:"mode"`
	Criteria map[string]string `json:"criteria"`
	Metadata SearchMetadata    `json:"metadata"`
	Message  string            `json:"message,omitempty"`
	Results  []T               `json:"results"`
}

type HistoryResponse struct {
	Mode    Mode                `json:"mode"`
	Entries []map[string]string `json:"entries"`
}

type BookingRequest struct {
	Mode    Mode   `json:"mode"`
	OfferID string `json:"offer_id"`
}

func (r *BookingRequest) Validate() error {
	if err := checkRequired(map[string]string{
		"mode":     string(r.Mode),
		"offer_id": r.OfferID,
	}, []string{"mode", "offer_id"}); err != nil {
		return err
	}
	if _, ok := ParseMode(string(r.Mode)); !ok {
		return ErrUnknownMode
	}
	return nil
}

type BookingConfirmation struct {
	Success   bool           `json:"success"`
	BookingID string         `json:"booking_id"`
	Message   string         `json:"message"`
	Kind      string         `json:"kind"`
	Details   BookingRequest `json:"details"`
}

// Alert kinds, matching what a front end shows as toast colours.
const (
	KindError   = "error"
	KindSuccess = "success"
	KindWarning = "warning"
)

type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Code    int      `json:"code"`
	Kind    string   `json:"kind"`
	Fields  []string `json:"fields,omitempty"`
}
