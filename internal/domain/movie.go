package domain

// Movie represents the canonical movie entity in the database/service.
// The struct tags double as the documented API schema: the OpenAPI
// generator reads json/doc/example when building component schemas.
type Movie struct {
	ID     int64   `json:"id" doc:"Movie ID" example:"1"`
	Name   string  `json:"name" doc:"Movie name" example:"Inception"`
	Year   int     `json:"year" doc:"Release year" example:"2010"`
	Rating float64 `json:"rating" doc:"Rating" example:"7.5"`
}
