package openapi

import (
	"net/http"

	"movies-api/internal/domain"
	"movies-api/internal/schema"
)

const jsonContent = "application/json"

// Generate builds the versioned API document from the shared schema
// definitions. The transform is pure: same registrations, same document,
// independent of runtime data.
func Generate() *Document {
	return &Document{
		OpenAPI: "3.1.0",
		Info: Info{
			Title:       "Movies API",
			Version:     "0.0.1",
			Description: "API for managing movies",
		},
		Servers: []Server{
			{URL: "http://localhost:3001", Description: "Local development server"},
			{URL: "https://movies-api.example.com", Description: "Production server"},
		},
		Paths:      paths(),
		Components: &Components{Schemas: componentSchemas()},
	}
}

func componentSchemas() map[string]*Schema {
	return map[string]*Schema{
		"CreateMovieRequest":    FromStruct(schema.CreateMovieRequest{}),
		"UpdateMovieRequest":    FromStruct(schema.UpdateMovieRequest{}),
		"CreateMovieResponse":   FromStruct(domain.MutationResult{}),
		"UpdatedMovieResponse":  FromStruct(domain.MutationResult{}),
		"GetMovieResponse":      getMovieResponseSchema(),
		"MovieNotFound":         errorEnvelopeSchema(http.StatusNotFound, "Movie not found"),
		"ConflictMovieResponse": errorEnvelopeSchema(http.StatusConflict, "Movie already exists"),
		"DeleteMovieResponse":   FromStruct(domain.DeleteResult{}),
	}
}

// getMovieResponseSchema is the one union the reflector cannot express on
// its own: data is a movie, a list of movies, or null.
func getMovieResponseSchema() *Schema {
	movie := FromStruct(domain.Movie{})
	return &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"status": {Type: "integer", Description: "Response status code", Example: 200},
			"data": {
				Description: "Movie details, a list of movies, or null",
				AnyOf: []*Schema{
					movie,
					{Type: "array", Items: movie, Description: "List of movies or an empty array if no movies exist"},
					{Type: "null"},
				},
			},
			"error": {
				Description: "Error message if an error occurred, otherwise null",
				AnyOf:       []*Schema{{Type: "string"}, {Type: "null"}},
			},
		},
		Required: []string{"status", "data"},
	}
}

func errorEnvelopeSchema(status int, example string) *Schema {
	return &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"status": {Type: "integer", Description: "Response status code", Example: status},
			"error":  {Type: "string", Description: "Error message", Example: example},
		},
		Required: []string{"status", "error"},
	}
}

func paths() map[string]*PathItem {
	idParam := Parameter{
		Name:        "id",
		In:          "path",
		Required:    true,
		Description: "Movie ID",
		Schema:      &Schema{Type: "string"},
	}
	nameParam := Parameter{
		Name:        "name",
		In:          "query",
		Description: "Movie name to search for",
		Schema:      &Schema{Type: "string"},
	}

	return map[string]*PathItem{
		"/": {
			Get: &Operation{
				Summary: "Health check",
				Responses: map[string]*Response{
					"200": {
						Description: "Server is running",
						Content: jsonBody(&Schema{
							Type: "object",
							Properties: map[string]*Schema{
								"message": {Type: "string", Example: "Server is running."},
							},
						}),
					},
				},
			},
		},
		"/movies": {
			Get: &Operation{
				Summary:     "Get all movies or filter by name",
				Description: `Retrieve a list of all movies. Optionally, provide a query parameter "name" to filter by a specific movie name`,
				Parameters:  []Parameter{nameParam},
				Responses: map[string]*Response{
					"200": {
						Description: `List of movies or a specific movie if the "name" query parameter is provided.`,
						Content:     jsonBody(ref("GetMovieResponse")),
					},
					"400": {
						Description: "Movie not found if the name is provided and does not match any movie",
						Content:     jsonBody(ref("MovieNotFound")),
					},
				},
			},
			Post: &Operation{
				Summary:     "Create a new movie",
				Description: "Create a new movie in the system",
				RequestBody: &RequestBody{Content: jsonBody(ref("CreateMovieRequest"))},
				Responses: map[string]*Response{
					"200": {Description: "Movie created successfully", Content: jsonBody(ref("CreateMovieResponse"))},
					"400": {Description: "Invalid request body or validation error"},
					"409": {Description: "Movie already exists", Content: jsonBody(ref("ConflictMovieResponse"))},
					"500": {Description: "Unexpected error occurred"},
				},
			},
		},
		"/movies/{id}": {
			Get: &Operation{
				Summary:     "Get a movie by ID",
				Description: "Retrieve a single movie by its ID",
				Parameters:  []Parameter{idParam},
				Responses: map[string]*Response{
					"200": {Description: "Movie found", Content: jsonBody(ref("GetMovieResponse"))},
					"404": {Description: "Movie not found", Content: jsonBody(ref("MovieNotFound"))},
				},
			},
			Put: &Operation{
				Summary:     "Update movie by ID",
				Description: "Update a movie by its ID",
				Parameters:  []Parameter{idParam},
				RequestBody: &RequestBody{Content: jsonBody(ref("UpdateMovieRequest"))},
				Responses: map[string]*Response{
					"200": {Description: "Movie updated successfully", Content: jsonBody(ref("UpdatedMovieResponse"))},
					"404": {Description: "Movie not found", Content: jsonBody(ref("MovieNotFound"))},
					"500": {Description: "Unexpected error occurred"},
				},
			},
			Delete: &Operation{
				Summary:     "Delete a movie by ID",
				Description: "Delete a movie by its ID",
				Parameters:  []Parameter{idParam},
				Responses: map[string]*Response{
					"200": {Description: "Movie deleted", Content: jsonBody(ref("DeleteMovieResponse"))},
					"404": {Description: "Movie not found", Content: jsonBody(ref("MovieNotFound"))},
					"500": {Description: "Unexpected error occurred"},
				},
			},
		},
	}
}

func jsonBody(s *Schema) map[string]*MediaType {
	return map[string]*MediaType{jsonContent: {Schema: s}}
}

func ref(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}
