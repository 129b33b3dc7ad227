package dto

type TranscribeResponse struct {
	Transcript string `json:"transcript"`
	Lang       string `json:"lang"`
	Status     string `json:"status"`
}
