package playerdomain

// BatchState is the terminal state of a batch import.
type BatchState string

const (
	StateSucceeded          BatchState = "succeeded"
	StateRejectedValidation BatchState = "rejected_validation"
	StateRejectedParse      BatchState = "rejected_parse"
	StateRejectedEmpty      BatchState = "rejected_empty"
	StateFailed             BatchState = "failed"
)

// CreatedPlayerSummary reports one player created by a batch.
type CreatedPlayerSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Position    string `json:"posicion"`
	NFLTeamName string `json:"nombreEquipoNFL"`
}

// BatchOutcome is the structured result of every batch import.
type BatchOutcome struct {
	Success        bool                   `json:"exito"`
	Message        string                 `json:"mensaje"`
	TotalProcessed int                    `json:"totalProcesados"`
	TotalSucceeded int                    `json:"totalExitosos"`
	TotalFailed    int                    `json:"totalErrores"`
	Errors         []ValidationError      `json:"errores"`
	CreatedPlayers []CreatedPlayerSummary `json:"jugadoresCreados"`
	ArchivedAs     string                 `json:"archivoMovidoA"`

	State    BatchState `json:"-"`
	ImportID string     `json:"-"`
}
