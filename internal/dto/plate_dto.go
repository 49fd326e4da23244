package dto

type CheckPlateRequest struct {
	Plate      string  `json:"plate"`
	RawText    string  `json:"raw_text"`
	Confidence float64 `json:"confidence"`
	ImagePath  string  `json:"image_path"`
}

type CheckPlateResponse struct {
	Plate  string `json:"plate"`
	Status string `json:"status"`
}

type SetPlateStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}
