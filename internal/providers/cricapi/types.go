package cricapi

const providerName = "cricapi"

type playersResponse struct {
	Status string           `json:"status"`
	Data   []playerResponse `json:"data"`
	Info   metaResponse     `json:"info"`
}

type playerResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Role        string   `json:"role"`
	Teams       []string `json:"teams"`
	PlayerImage string   `json:"playerImg"`
}

type metaResponse struct {
	Offset     int `json:"offset"`
	TotalRows  int `json:"totalRows"`
	HitsUsed   int `json:"hitsUsed"`
	HitsLimit  int `json:"hitsLimit"`
	QueryTime  int `json:"queryTime"`
	CacheScore int `json:"cache"`
}
