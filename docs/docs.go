// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

// Package docs registers the swagger 2.0 document served at /swagger/*.
// It mirrors the annotations in cmd/server/docs.go and internal/api; after
// changing them, regenerate with:
//
//	swag init -g cmd/server/docs.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/footprints/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Landing page",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LandingPage"}}
                }
            }
        },
        "/conformance": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Conformance classes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Conformance"}}
                }
            }
        },
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Ping",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StatusResponse"}}
                }
            }
        },
        "/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StatusResponse"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Store is readable", "schema": {"$ref": "#/definitions/models.StatusResponse"}},
                    "503": {"description": "Store is not readable", "schema": {"$ref": "#/definitions/models.StatusResponse"}}
                }
            }
        },
        "/collections": {
            "get": {
                "description": "One collection per distinct municipality, ordered by building count descending",
                "produces": ["application/json"],
                "tags": ["Collections"],
                "summary": "List collections",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CollectionsResponse"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/collections/{municipality}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Collections"],
                "summary": "Get collection",
                "parameters": [
                    {"type": "string", "description": "Municipality name or collection id", "name": "municipality", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Collection"}},
                    "404": {"description": "No buildings for this municipality", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/collections/{municipality}/items": {
            "get": {
                "description": "Unknown municipalities yield an empty page",
                "produces": ["application/geo+json"],
                "tags": ["Features"],
                "summary": "List items in a collection",
                "parameters": [
                    {"type": "string", "description": "Municipality name or collection id", "name": "municipality", "in": "path", "required": true},
                    {"type": "integer", "default": 50, "description": "Page size (1-1000)", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Items to skip", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.FeatureCollection"}},
                    "400": {"description": "Invalid paging parameters", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Store failure or malformed geometry", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/collections/{municipality}/items/{building_id}": {
            "get": {
                "produces": ["application/geo+json"],
                "tags": ["Features"],
                "summary": "Get item",
                "parameters": [
                    {"type": "string", "description": "Municipality name or collection id", "name": "municipality", "in": "path", "required": true},
                    {"type": "string", "description": "Building id", "name": "building_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Feature"}},
                    "404": {"description": "No such building in this municipality", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Store failure or malformed geometry", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/buildings/bbox": {
            "get": {
                "description": "Coordinates are in the store's coordinate reference system; min must not exceed max on either axis",
                "produces": ["application/geo+json"],
                "tags": ["Features"],
                "summary": "Bounding box search",
                "parameters": [
                    {"type": "number", "description": "Minimum x", "name": "minx", "in": "query", "required": true},
                    {"type": "number", "description": "Minimum y", "name": "miny", "in": "query", "required": true},
                    {"type": "number", "description": "Maximum x", "name": "maxx", "in": "query", "required": true},
                    {"type": "number", "description": "Maximum y", "name": "maxy", "in": "query", "required": true},
                    {"type": "integer", "default": 50, "description": "Page size (1-1000)", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Items to skip", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.FeatureCollection"}},
                    "400": {"description": "Invalid coordinates or paging parameters", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Store failure or malformed geometry", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.Link": {
            "type": "object",
            "properties": {
                "href": {"type": "string"},
                "rel": {"type": "string"},
                "type": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "models.FeatureProperties": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "municipality_name": {"type": "string"}
            }
        },
        "models.Feature": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "example": "Feature"},
                "id": {"type": "string"},
                "geometry": {"type": "object", "description": "GeoJSON Polygon or MultiPolygon"},
                "properties": {"$ref": "#/definitions/models.FeatureProperties"}
            }
        },
        "models.FeatureCollection": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "example": "FeatureCollection"},
                "numberMatched": {"type": "integer"},
                "numberReturned": {"type": "integer"},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"},
                "links": {"type": "array", "items": {"$ref": "#/definitions/models.Link"}},
                "features": {"type": "array", "items": {"$ref": "#/definitions/models.Feature"}}
            }
        },
        "models.Collection": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "itemType": {"type": "string"},
                "building_count": {"type": "integer"},
                "links": {"type": "array", "items": {"$ref": "#/definitions/models.Link"}}
            }
        },
        "models.CollectionsResponse": {
            "type": "object",
            "properties": {
                "collections": {"type": "array", "items": {"$ref": "#/definitions/models.Collection"}},
                "links": {"type": "array", "items": {"$ref": "#/definitions/models.Link"}}
            }
        },
        "models.LandingPage": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "links": {"type": "array", "items": {"$ref": "#/definitions/models.Link"}}
            }
        },
        "models.Conformance": {
            "type": "object",
            "properties": {
                "conformsTo": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.StatusResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object"},
                "request_id": {"type": "string"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/models.APIError"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Footprints API",
	Description:      "Read-only OGC API Features style access to building footprints grouped by municipality.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
