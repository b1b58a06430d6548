// Package api holds the OpenAPI document of the backend in the layout
// written by swag. Run go generate after changing handler annotations.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "AGPL-3.0",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.RootResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/healthz.Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "tags": [
                    "v1"
                ],
                "summary": "v1 API",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.V1Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "v1"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/allocations/{id}": {
            "get": {
                "description": "Returns a specific allocation",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Allocations"
                ],
                "summary": "Get allocation",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes an allocation. The donations it used are available again afterwards.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Allocations"
                ],
                "summary": "Delete allocation",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Version of the allocation",
                        "name": "version",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.PoolResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Allocations"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "patch": {
                "description": "Updates an allocation. Only values to be updated need to be specified, the version is always required.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Allocations"
                ],
                "summary": "Update allocation",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Allocation",
                        "name": "allocation",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationUpdate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    }
                }
            }
        },
        "/v1/allocations/{id}/status": {
            "put": {
                "description": "Moves an allocation to another status. Allocations move forward one step at a time and can be moved back to any earlier status.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Allocations"
                ],
                "summary": "Set allocation status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Status",
                        "name": "status",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationStatusUpdate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Allocations"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/animals": {
            "get": {
                "description": "Returns a list of animals",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Animals"
                ],
                "summary": "Get animals",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by name",
                        "name": "name",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by species",
                        "name": "species",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Search for this text in name and note",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "The offset of the first Animal returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of Animals to return. Defaults to 50.",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AnimalListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AnimalListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AnimalListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates new animals",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Animals"
                ],
                "summary": "Create animals",
                "parameters": [
                    {
                        "description": "Animals",
                        "name": "animals",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.AnimalEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.AnimalCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AnimalCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AnimalCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Animals"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/animals/{id}": {
            "get": {
                "description": "Returns a specific animal",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Animals"
                ],
                "summary": "Get animal",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AnimalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AnimalResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.AnimalResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AnimalResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Animals"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/animals/{id}/allocations": {
            "get": {
                "description": "Returns the allocations of an animal. With visible=true, only allocations shown to donors are returned and internal fields are left out.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Allocations"
                ],
                "summary": "Get allocations",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID of the animal formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "boolean",
                        "description": "Only return allocations visible to donors",
                        "name": "visible",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationListResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates an allocation for an animal. The split between donations and external funding is computed from the donations that are available when the allocation is committed.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Allocations"
                ],
                "summary": "Create allocation",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID of the animal formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Allocation",
                        "name": "allocation",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Allocations"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID of the animal formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/animals/{id}/allocations/preview": {
            "post": {
                "description": "Returns the split of a cost between donations and external funding without saving anything",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Allocations"
                ],
                "summary": "Preview allocation split",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID of the animal formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Cost to split",
                        "name": "split",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.SplitRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SplitResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SplitResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.SplitResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SplitResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Allocations"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID of the animal formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/animals/{id}/donations": {
            "get": {
                "description": "Returns all donations for an animal, newest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Donations"
                ],
                "summary": "Get donations",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID of the animal formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.DonationListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.DonationListResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.DonationListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.DonationListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Records donations received for an animal",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Donations"
                ],
                "summary": "Record donations",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID of the animal formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Donations",
                        "name": "donations",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.DonationEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.DonationCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.DonationCreateResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.DonationCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.DonationCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Donations"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID of the animal formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/animals/{id}/funding": {
            "get": {
                "description": "Returns the amount raised, committed and remaining for an animal",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Funding"
                ],
                "summary": "Get funding summary",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID of the animal formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.FundingSummaryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.FundingSummaryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.FundingSummaryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.FundingSummaryResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Funding"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID of the animal formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.VersionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    },
    "definitions": {
        "funding.Pool": {
            "type": "object",
            "properties": {
                "amountRaised": {
                    "description": "Sum of all donations for the animal",
                    "type": "string",
                    "example": "1000"
                },
                "animalId": {
                    "type": "string",
                    "example": "a0909e84-e8f9-4cb6-82a5-025dff105ff2"
                },
                "committed": {
                    "description": "Sum of the donation covered amounts of all allocations",
                    "type": "string",
                    "example": "850"
                },
                "remaining": {
                    "description": "Donations not yet spent",
                    "type": "string",
                    "example": "150"
                }
            }
        },
        "funding.Split": {
            "type": "object",
            "properties": {
                "covered": {
                    "type": "string",
                    "example": "100"
                },
                "outstanding": {
                    "type": "string",
                    "example": "20.5"
                },
                "totalCost": {
                    "type": "string",
                    "example": "120.5"
                }
            }
        },
        "healthz.Response": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "an error occurred on the server during your request"
                }
            }
        },
        "models.AllocationStatus": {
            "type": "string",
            "enum": [
                "Draft",
                "Verified",
                "Published"
            ],
            "x-enum-varnames": [
                "AllocationStatusDraft",
                "AllocationStatusVerified",
                "AllocationStatusPublished"
            ]
        },
        "models.FundingStatus": {
            "type": "string",
            "enum": [
                "Fully Funded",
                "Partially Funded"
            ],
            "x-enum-varnames": [
                "FundingStatusFullyFunded",
                "FundingStatusPartiallyFunded"
            ]
        },
        "router.RootLinks": {
            "type": "object",
            "properties": {
                "docs": {
                    "description": "Swagger API documentation",
                    "type": "string",
                    "example": "https://example.com/api/docs/index.html"
                },
                "healthz": {
                    "description": "Healthz endpoint",
                    "type": "string",
                    "example": "https://example.com/api/healthz"
                },
                "metrics": {
                    "description": "Prometheus metrics",
                    "type": "string",
                    "example": "https://example.com/api/metrics"
                },
                "v1": {
                    "description": "List endpoint for all v1 endpoints",
                    "type": "string",
                    "example": "https://example.com/api/v1"
                },
                "version": {
                    "description": "Endpoint returning the version of the backend",
                    "type": "string",
                    "example": "https://example.com/api/version"
                }
            }
        },
        "router.RootResponse": {
            "type": "object",
            "properties": {
                "links": {
                    "$ref": "#/definitions/router.RootLinks"
                }
            }
        },
        "router.V1Links": {
            "type": "object",
            "properties": {
                "animals": {
                    "description": "URL of animal list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/animals"
                }
            }
        },
        "router.V1Response": {
            "type": "object",
            "properties": {
                "links": {
                    "description": "Links for the v1 API",
                    "allOf": [
                        {
                            "$ref": "#/definitions/router.V1Links"
                        }
                    ]
                }
            }
        },
        "router.VersionObject": {
            "type": "object",
            "properties": {
                "version": {
                    "description": "the running version of the backend",
                    "type": "string",
                    "example": "1.1.0"
                }
            }
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data object for the version endpoint",
                    "allOf": [
                        {
                            "$ref": "#/definitions/router.VersionObject"
                        }
                    ]
                }
            }
        },
        "v1.Allocation": {
            "type": "object",
            "properties": {
                "allocationType": {
                    "type": "string",
                    "example": "Surgery"
                },
                "animalId": {
                    "type": "string",
                    "example": "a0909e84-e8f9-4cb6-82a5-025dff105ff2"
                },
                "category": {
                    "type": "string",
                    "example": "Medical"
                },
                "conditionUpdate": {
                    "type": "string",
                    "example": "Recovering well"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "deletedAt": {
                    "description": "Time the resource was marked as deleted",
                    "type": "string",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "donationCoveredAmount": {
                    "type": "string",
                    "example": "100"
                },
                "externalCoveredAmount": {
                    "type": "string",
                    "example": "20.5"
                },
                "externalFundingNotes": {
                    "type": "string",
                    "example": "Covered by the spring grant"
                },
                "externalFundingSource": {
                    "type": "string",
                    "example": "Grant"
                },
                "fundingStatus": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.FundingStatus"
                        }
                    ],
                    "example": "Partially Funded"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "internalNotes": {
                    "type": "string",
                    "example": "Follow-up in two weeks"
                },
                "lastUpdatedBy": {
                    "type": "string",
                    "example": "jane@shelter.example"
                },
                "links": {
                    "$ref": "#/definitions/v1.AllocationLinks"
                },
                "publicDescription": {
                    "type": "string",
                    "example": "Bella had her leg fixed"
                },
                "receiptImage": {
                    "type": "string",
                    "example": "receipts/2024/03/bella-surgery.jpg"
                },
                "serviceProvider": {
                    "type": "string",
                    "example": "City Vet Clinic"
                },
                "status": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.AllocationStatus"
                        }
                    ],
                    "example": "Published"
                },
                "totalCost": {
                    "type": "string",
                    "example": "120.5"
                },
                "treatmentPhoto": {
                    "type": "string",
                    "example": "photos/2024/03/bella.jpg"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "version": {
                    "type": "integer",
                    "example": 3
                }
            }
        },
        "v1.AllocationEditable": {
            "type": "object",
            "properties": {
                "allocationType": {
                    "description": "Type of the expense",
                    "type": "string",
                    "example": "Surgery"
                },
                "category": {
                    "description": "Category of the expense",
                    "type": "string",
                    "example": "Medical"
                },
                "conditionUpdate": {
                    "description": "Update on the condition of the animal",
                    "type": "string",
                    "example": "Recovering well"
                },
                "externalFundingConfirmed": {
                    "description": "Confirms that part of the cost is funded externally",
                    "type": "boolean",
                    "default": false,
                    "example": true
                },
                "externalFundingNotes": {
                    "description": "Notes about the external funding",
                    "type": "string",
                    "example": "Covered by the spring grant"
                },
                "externalFundingSource": {
                    "description": "Source of the funds not covered by donations",
                    "type": "string",
                    "example": "Grant"
                },
                "internalNotes": {
                    "description": "Notes for shelter staff",
                    "type": "string",
                    "example": "Follow-up in two weeks"
                },
                "lastUpdatedBy": {
                    "description": "Who made the change",
                    "type": "string",
                    "example": "jane@shelter.example"
                },
                "publicDescription": {
                    "description": "Description shown to donors",
                    "type": "string",
                    "example": "Bella had her leg fixed"
                },
                "receiptImage": {
                    "description": "Reference to the receipt",
                    "type": "string",
                    "example": "receipts/2024/03/bella-surgery.jpg"
                },
                "serviceProvider": {
                    "description": "Who provided the service",
                    "type": "string",
                    "example": "City Vet Clinic"
                },
                "status": {
                    "description": "Visibility of the allocation for donors",
                    "type": "string",
                    "enum": [
                        "Draft",
                        "Verified",
                        "Published"
                    ],
                    "example": "Draft"
                },
                "totalCost": {
                    "description": "The full cost of the expense",
                    "type": "string",
                    "example": "120.5"
                },
                "treatmentPhoto": {
                    "description": "Reference to a photo of the treatment",
                    "type": "string",
                    "example": "photos/2024/03/bella.jpg"
                }
            }
        },
        "v1.AllocationLinks": {
            "type": "object",
            "properties": {
                "animal": {
                    "description": "The animal the allocation is for",
                    "type": "string",
                    "example": "https://example.com/api/v1/animals/a0909e84-e8f9-4cb6-82a5-025dff105ff2"
                },
                "funding": {
                    "description": "The funding summary of the animal",
                    "type": "string",
                    "example": "https://example.com/api/v1/animals/a0909e84-e8f9-4cb6-82a5-025dff105ff2/funding"
                },
                "self": {
                    "description": "The allocation itself",
                    "type": "string",
                    "example": "https://example.com/api/v1/allocations/45b6b5b9-f746-4ae9-b77b-7688b91f8166"
                },
                "status": {
                    "description": "Endpoint to change the status",
                    "type": "string",
                    "example": "https://example.com/api/v1/allocations/45b6b5b9-f746-4ae9-b77b-7688b91f8166/status"
                }
            }
        },
        "v1.AllocationListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of allocations",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Allocation"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.AllocationResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the allocation",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Allocation"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "errors": {
                    "description": "Validation errors by field",
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "pool": {
                    "description": "The funding pool of the animal after the change, or the current pool on errors",
                    "allOf": [
                        {
                            "$ref": "#/definitions/funding.Pool"
                        }
                    ]
                }
            }
        },
        "v1.AllocationStatusUpdate": {
            "type": "object",
            "properties": {
                "lastUpdatedBy": {
                    "description": "Who made the change",
                    "type": "string",
                    "example": "jane@shelter.example"
                },
                "status": {
                    "description": "The new status",
                    "type": "string",
                    "enum": [
                        "Draft",
                        "Verified",
                        "Published"
                    ],
                    "example": "Published"
                },
                "version": {
                    "description": "The version of the allocation this update is based on",
                    "type": "integer",
                    "example": 3
                }
            }
        },
        "v1.AllocationUpdate": {
            "type": "object",
            "properties": {
                "allocationType": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "conditionUpdate": {
                    "type": "string"
                },
                "externalFundingConfirmed": {
                    "type": "boolean"
                },
                "externalFundingNotes": {
                    "type": "string"
                },
                "externalFundingSource": {
                    "type": "string"
                },
                "internalNotes": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "publicDescription": {
                    "type": "string"
                },
                "receiptImage": {
                    "type": "string"
                },
                "serviceProvider": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/models.AllocationStatus"
                },
                "totalCost": {
                    "type": "string"
                },
                "treatmentPhoto": {
                    "type": "string"
                },
                "version": {
                    "description": "The version of the allocation this update is based on",
                    "type": "integer",
                    "example": 3
                }
            }
        },
        "v1.Animal": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "deletedAt": {
                    "description": "Time the resource was marked as deleted",
                    "type": "string",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "description": "Links to related resources",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.AnimalLinks"
                        }
                    ]
                },
                "name": {
                    "description": "Name of the animal",
                    "type": "string",
                    "default": "",
                    "example": "Bella"
                },
                "note": {
                    "description": "Notes about the animal",
                    "type": "string",
                    "default": "",
                    "example": "Found near the train station"
                },
                "species": {
                    "description": "Species of the animal",
                    "type": "string",
                    "default": "",
                    "example": "Dog"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.AnimalCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the Animal",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.AnimalResponse"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.AnimalEditable": {
            "type": "object",
            "properties": {
                "name": {
                    "description": "Name of the animal",
                    "type": "string",
                    "default": "",
                    "example": "Bella"
                },
                "note": {
                    "description": "Notes about the animal",
                    "type": "string",
                    "default": "",
                    "example": "Found near the train station"
                },
                "species": {
                    "description": "Species of the animal",
                    "type": "string",
                    "default": "",
                    "example": "Dog"
                }
            }
        },
        "v1.AnimalLinks": {
            "type": "object",
            "properties": {
                "allocations": {
                    "description": "Allocations for the animal",
                    "type": "string",
                    "example": "https://example.com/api/v1/animals/45b6b5b9-f746-4ae9-b77b-7688b91f8166/allocations"
                },
                "donations": {
                    "description": "Donations for the animal",
                    "type": "string",
                    "example": "https://example.com/api/v1/animals/45b6b5b9-f746-4ae9-b77b-7688b91f8166/donations"
                },
                "funding": {
                    "description": "Funding summary of the animal",
                    "type": "string",
                    "example": "https://example.com/api/v1/animals/45b6b5b9-f746-4ae9-b77b-7688b91f8166/funding"
                },
                "self": {
                    "description": "The animal itself",
                    "type": "string",
                    "example": "https://example.com/api/v1/animals/45b6b5b9-f746-4ae9-b77b-7688b91f8166"
                }
            }
        },
        "v1.AnimalListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of Animals",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Animal"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "pagination": {
                    "description": "Pagination information",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Pagination"
                        }
                    ]
                }
            }
        },
        "v1.AnimalResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the Animal",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Animal"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Donation": {
            "type": "object",
            "properties": {
                "amount": {
                    "description": "Amount of the donation",
                    "type": "string",
                    "maximum": 1000000000000.0,
                    "minimum": 1e-08,
                    "multipleOf": 1e-08,
                    "example": "25"
                },
                "animalId": {
                    "description": "ID of the animal",
                    "type": "string",
                    "example": "45b6b5b9-f746-4ae9-b77b-7688b91f8166"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "date": {
                    "description": "Date the donation was received. Defaults to now",
                    "type": "string",
                    "example": "2024-03-12T00:00:00Z"
                },
                "deletedAt": {
                    "description": "Time the resource was marked as deleted",
                    "type": "string",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.DonationLinks"
                },
                "note": {
                    "description": "Note about the donation",
                    "type": "string",
                    "default": "",
                    "example": "Monthly sponsorship"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.DonationCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the donations",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.DonationResponse"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.DonationEditable": {
            "type": "object",
            "properties": {
                "amount": {
                    "description": "Amount of the donation",
                    "type": "string",
                    "maximum": 1000000000000.0,
                    "minimum": 1e-08,
                    "multipleOf": 1e-08,
                    "example": "25"
                },
                "date": {
                    "description": "Date the donation was received. Defaults to now",
                    "type": "string",
                    "example": "2024-03-12T00:00:00Z"
                },
                "note": {
                    "description": "Note about the donation",
                    "type": "string",
                    "default": "",
                    "example": "Monthly sponsorship"
                }
            }
        },
        "v1.DonationLinks": {
            "type": "object",
            "properties": {
                "animal": {
                    "description": "The animal the donation is for",
                    "type": "string",
                    "example": "https://example.com/api/v1/animals/45b6b5b9-f746-4ae9-b77b-7688b91f8166"
                }
            }
        },
        "v1.DonationListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of donations",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Donation"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.DonationResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the donation",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Donation"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.FundingSummaryResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The funding pool of the animal",
                    "allOf": [
                        {
                            "$ref": "#/definitions/funding.Pool"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Pagination": {
            "type": "object",
            "properties": {
                "count": {
                    "description": "The amount of records returned in this response",
                    "type": "integer",
                    "example": 25
                },
                "limit": {
                    "description": "The maximum amount of resources to return for this request",
                    "type": "integer",
                    "example": 25
                },
                "offset": {
                    "description": "The offset for the first record returned",
                    "type": "integer",
                    "example": 50
                },
                "total": {
                    "description": "The total number of resources matching the query",
                    "type": "integer",
                    "example": 827
                }
            }
        },
        "v1.PoolResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "pool": {
                    "description": "The funding pool of the animal",
                    "allOf": [
                        {
                            "$ref": "#/definitions/funding.Pool"
                        }
                    ]
                }
            }
        },
        "v1.SplitRequest": {
            "type": "object",
            "properties": {
                "excluding": {
                    "description": "ID of an allocation that is being edited",
                    "type": "string",
                    "example": "45b6b5b9-f746-4ae9-b77b-7688b91f8166"
                },
                "totalCost": {
                    "description": "The full cost of the expense",
                    "type": "string",
                    "example": "120.5"
                }
            }
        },
        "v1.SplitResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The proposed split",
                    "allOf": [
                        {
                            "$ref": "#/definitions/funding.Split"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "An ID specified in the query string was not a valid UUID"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Shelter Fund",
	Description:      "The backend for Shelter Fund, tracking how donations for shelter animals are spent on their care.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
