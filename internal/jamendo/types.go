package jamendo

// Track is a single track from the Jamendo tracks endpoint.
type Track struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ArtistName string `json:"artist_name"`
	AlbumName  string `json:"album_name"`
	Duration   int    `json:"duration"` // seconds
	Audio      string `json:"audio"`
	Image      string `json:"image"`
	LicenseURL string `json:"license_ccurl"`
}

// tracksResponse is the JSON response for the tracks endpoint.
type tracksResponse struct {
	Headers struct {
		Status       string `json:"status"`
		Code         int    `json:"code"`
		ErrorMessage string `json:"error_message"`
		ResultsCount int    `json:"results_count"`
	} `json:"headers"`
	Results []Track `json:"results"`
}
