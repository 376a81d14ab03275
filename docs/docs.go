// Package docs registers the Swagger document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/distance": {
            "get": {
                "summary": "Distance between two points",
                "parameters": [
                    {"type": "number", "description": "latitude of the first point", "name": "lat1", "in": "query"},
                    {"type": "number", "description": "longitude of the first point", "name": "lon1", "in": "query"},
                    {"type": "number", "description": "latitude of the second point", "name": "lat2", "in": "query"},
                    {"type": "number", "description": "longitude of the second point", "name": "lon2", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Measurement"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/listings/nearby": {
            "get": {
                "summary": "Listings ordered by distance from the viewer",
                "parameters": [
                    {"type": "number", "description": "viewer latitude", "name": "lat", "in": "query"},
                    {"type": "number", "description": "viewer longitude", "name": "lon", "in": "query"},
                    {"type": "string", "description": "property or job", "name": "kind", "in": "query"},
                    {"type": "integer", "description": "page size", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.ListingDistance"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/listings/{id}/distance": {
            "get": {
                "summary": "Distance from the viewer to one listing",
                "parameters": [
                    {"type": "integer", "description": "listing id", "name": "id", "in": "path", "required": true},
                    {"type": "number", "description": "viewer latitude", "name": "lat", "in": "query"},
                    {"type": "number", "description": "viewer longitude", "name": "lon", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ListingDistance"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "models.Measurement": {
            "type": "object",
            "properties": {
                "distance_km": {"type": "number"},
                "display": {"type": "string"}
            }
        },
        "models.ListingDistance": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "kind": {"type": "string"},
                "title": {"type": "string"},
                "address": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "distance_km": {"type": "number"},
                "display": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Listing Distance API",
	Description:      "Distances between marketplace listings and the viewer.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
