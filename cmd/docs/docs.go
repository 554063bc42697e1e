// Package docs holds the Swagger document served at /swagger. It mirrors the
// handler annotations; refresh it with
// `swag init -g cmd/household_backend/main.go -o cmd/docs`.
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
        "/categories": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the fixed category catalog with display names and icons.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "categories"
                ],
                "summary": "List categories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.CategoryResponse"
                            }
                        }
                    }
                }
            }
        },
        "/workspaces": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Retrieves the workspaces the authenticated user currently belongs to.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "workspaces"
                ],
                "summary": "List workspaces for current user",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListWorkspacesResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to list workspaces",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Creates a personal, split or joint workspace and makes the creator its owner.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "workspaces"
                ],
                "summary": "Create a new workspace",
                "parameters": [
                    {
                        "description": "Workspace details",
                        "name": "workspace",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateWorkspaceRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.WorkspaceResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to create workspace",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/workspaces/{workspace_id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "workspaces"
                ],
                "summary": "Get a workspace",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.WorkspaceResponse"
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Workspace not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/workspaces/{workspace_id}/budgets": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "budgets"
                ],
                "summary": "List category limits",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListCategoryBudgetsResponse"
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/workspaces/{workspace_id}/budgets/categories/{category}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Creates or replaces the monthly limit of one category. A limit of 0 counts as not budgeted.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "budgets"
                ],
                "summary": "Set a category limit",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Category ID",
                        "name": "category",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Limit",
                        "name": "budget",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SetCategoryBudgetRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CategoryBudgetResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Owner or admin required",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "budgets"
                ],
                "summary": "Remove a category limit",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Category ID",
                        "name": "category",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "403": {
                        "description": "Owner or admin required",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "No limit configured",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/workspaces/{workspace_id}/budgets/overall": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Sets the monthly target of a joint workspace or the monthly budget of any other. Omit limit to clear it.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "budgets"
                ],
                "summary": "Set the overall monthly limit",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Limit",
                        "name": "limit",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SetOverallLimitRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.WorkspaceResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Owner or admin required",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/workspaces/{workspace_id}/expenses": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists expenses newest first with token-based pagination, optionally bounded by date.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "expenses"
                ],
                "summary": "List expenses",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Page size (1-100)",
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "default": 20
                    },
                    {
                        "description": "Token from the previous page",
                        "name": "nextToken",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Inclusive lower bound, RFC 3339 or YYYY-MM-DD",
                        "name": "from",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Inclusive upper bound, RFC 3339 or YYYY-MM-DD",
                        "name": "to",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListExpensesResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Records an expense. The payer defaults to the caller; splitDetails, when present, must name current members and sum to the amount.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "expenses"
                ],
                "summary": "Record an expense",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Expense details",
                        "name": "expense",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateExpenseRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.ExpenseResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/workspaces/{workspace_id}/expenses/{expense_id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "expenses"
                ],
                "summary": "Get an expense",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Expense ID",
                        "name": "expense_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ExpenseResponse"
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Expense not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Permanently deletes an expense. Allowed for the payer or an owner/admin.",
                "tags": [
                    "expenses"
                ],
                "summary": "Delete an expense",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Expense ID",
                        "name": "expense_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Expense not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Patches amount, category, description, date, recurring flag or split details. Allowed for the payer or an owner/admin.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "expenses"
                ],
                "summary": "Update an expense",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Expense ID",
                        "name": "expense_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Fields to change",
                        "name": "patch",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateExpenseRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ExpenseResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Expense not found or modified concurrently",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/workspaces/{workspace_id}/members": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "workspaces"
                ],
                "summary": "List workspace members",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Include members who left",
                        "name": "includeRemoved",
                        "in": "query",
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListMembersResponse"
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Adds a user with the ADMIN or MEMBER role (requires owner or admin).",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "workspaces"
                ],
                "summary": "Add a member to a workspace",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "User ID and role",
                        "name": "member",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AddMemberRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.MemberResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Owner or admin required",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Already a member",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/workspaces/{workspace_id}/members/{user_id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Marks the membership as removed. Members may remove themselves; removing others requires owner or admin.",
                "tags": [
                    "workspaces"
                ],
                "summary": "Remove a member from a workspace",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "User ID",
                        "name": "user_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "The owner cannot be removed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Member not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/workspaces/{workspace_id}/reports/budget": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Current month spend against the category limits and the overall limit.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Budget versus actual",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BudgetComparisonResponse"
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/workspaces/{workspace_id}/reports/categories": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Totals spend per category, largest first. Missing bounds default to the current month.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Spend per category",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Window start, RFC 3339 or YYYY-MM-DD",
                        "name": "from",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Window end, RFC 3339 or YYYY-MM-DD",
                        "name": "to",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CategoryBreakdownResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid window",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/workspaces/{workspace_id}/reports/members": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Spend per member and category",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Window start, RFC 3339 or YYYY-MM-DD",
                        "name": "from",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Window end, RFC 3339 or YYYY-MM-DD",
                        "name": "to",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MemberBreakdownResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid window",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/workspaces/{workspace_id}/reports/remaining": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "What is left of a joint workspace's monthly target this month; negative when over.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Remaining monthly target",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PooledRemainingResponse"
                        }
                    },
                    "400": {
                        "description": "Not a joint workspace",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/workspaces/{workspace_id}/reports/settlement": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "All-time settlement of a split workspace. Positive balances are owed money, negative balances owe.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Member balances",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SettlementResponse"
                        }
                    },
                    "400": {
                        "description": "Not a split workspace",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/workspaces/{workspace_id}/reports/summary": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Category totals, recent trend, budget comparison and settlement or remaining target, computed from one snapshot.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Dashboard summary",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SummaryResponse"
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Workspace not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/workspaces/{workspace_id}/reports/trend": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Monthly totals, oldest first, ending with the current month.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Monthly spend trend",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Number of months (1-60)",
                        "name": "months",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.TrendResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid months",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/workspaces/{workspace_id}/split-policy": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Sets the default split method of a split workspace. Custom splits need an owner share in percent.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "workspaces"
                ],
                "summary": "Change the split policy",
                "parameters": [
                    {
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Split policy",
                        "name": "policy",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateSplitPolicyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.WorkspaceResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Owner or admin required",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Workspace not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.MemberRole": {
            "type": "string",
            "enum": [
                "OWNER",
                "ADMIN",
                "MEMBER",
                "REMOVED"
            ]
        },
        "domain.SplitMethod": {
            "type": "string",
            "enum": [
                "50/50",
                "income",
                "custom"
            ]
        },
        "domain.WorkspaceType": {
            "type": "string",
            "enum": [
                "personal",
                "split",
                "joint"
            ]
        },
        "dto.AddMemberRequest": {
            "type": "object",
            "required": [
                "role",
                "userID"
            ],
            "properties": {
                "role": {
                    "type": "string",
                    "enum": [
                        "ADMIN",
                        "MEMBER"
                    ]
                },
                "userID": {
                    "type": "string"
                },
                "userName": {
                    "type": "string",
                    "maxLength": 100
                }
            }
        },
        "dto.BudgetComparisonResponse": {
            "type": "object",
            "properties": {
                "budgeted": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CategoryBudgetStatusResponse"
                    }
                },
                "overallLimit": {
                    "$ref": "#/definitions/dto.Money"
                },
                "overallRemaining": {
                    "$ref": "#/definitions/dto.Money"
                },
                "overallSpent": {
                    "$ref": "#/definitions/dto.Money"
                },
                "unbudgeted": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CategoryTotalResponse"
                    }
                },
                "window": {
                    "$ref": "#/definitions/dto.WindowResponse"
                }
            }
        },
        "dto.CategoryBreakdownResponse": {
            "type": "object",
            "properties": {
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CategoryTotalResponse"
                    }
                },
                "total": {
                    "$ref": "#/definitions/dto.Money"
                },
                "window": {
                    "$ref": "#/definitions/dto.WindowResponse"
                }
            }
        },
        "dto.CategoryBudgetResponse": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "limit": {
                    "$ref": "#/definitions/dto.Money"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "dto.CategoryBudgetStatusResponse": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "isOver": {
                    "type": "boolean"
                },
                "limit": {
                    "$ref": "#/definitions/dto.Money"
                },
                "name": {
                    "type": "string"
                },
                "spent": {
                    "$ref": "#/definitions/dto.Money"
                }
            }
        },
        "dto.CategoryResponse": {
            "type": "object",
            "properties": {
                "icon": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "dto.CategoryTotalResponse": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "total": {
                    "$ref": "#/definitions/dto.Money"
                }
            }
        },
        "dto.CreateExpenseRequest": {
            "type": "object",
            "required": [
                "category",
                "date"
            ],
            "properties": {
                "amount": {
                    "type": "number",
                    "minimum": 0
                },
                "category": {
                    "type": "string",
                    "maxLength": 64
                },
                "date": {
                    "type": "string"
                },
                "description": {
                    "type": "string",
                    "maxLength": 500
                },
                "isRecurring": {
                    "type": "boolean"
                },
                "payerID": {
                    "type": "string"
                },
                "splitDetails": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    }
                }
            }
        },
        "dto.CreateWorkspaceRequest": {
            "type": "object",
            "required": [
                "name",
                "type"
            ],
            "properties": {
                "monthlyBudget": {
                    "type": "number",
                    "minimum": 0
                },
                "monthlyTarget": {
                    "type": "number",
                    "minimum": 0
                },
                "name": {
                    "type": "string",
                    "maxLength": 100
                },
                "ownerShare": {
                    "type": "number",
                    "minimum": 0,
                    "maximum": 100
                },
                "splitMethod": {
                    "$ref": "#/definitions/domain.SplitMethod"
                },
                "type": {
                    "$ref": "#/definitions/domain.WorkspaceType"
                }
            }
        },
        "dto.ExpenseResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "category": {
                    "type": "string"
                },
                "categoryIcon": {
                    "type": "string"
                },
                "categoryName": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "dateMs": {
                    "type": "integer"
                },
                "description": {
                    "type": "string"
                },
                "display": {
                    "type": "string"
                },
                "expenseID": {
                    "type": "string"
                },
                "isRecurring": {
                    "type": "boolean"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "payerID": {
                    "type": "string"
                },
                "splitDetails": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    }
                },
                "workspaceID": {
                    "type": "string"
                }
            }
        },
        "dto.ListCategoryBudgetsResponse": {
            "type": "object",
            "properties": {
                "budgets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CategoryBudgetResponse"
                    }
                }
            }
        },
        "dto.ListExpensesResponse": {
            "type": "object",
            "properties": {
                "expenses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ExpenseResponse"
                    }
                },
                "nextToken": {
                    "type": "string"
                }
            }
        },
        "dto.ListMembersResponse": {
            "type": "object",
            "properties": {
                "members": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.MemberResponse"
                    }
                }
            }
        },
        "dto.ListWorkspacesResponse": {
            "type": "object",
            "properties": {
                "workspaces": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.WorkspaceResponse"
                    }
                }
            }
        },
        "dto.MemberBalanceResponse": {
            "type": "object",
            "properties": {
                "balance": {
                    "$ref": "#/definitions/dto.Money"
                },
                "memberID": {
                    "type": "string"
                }
            }
        },
        "dto.MemberBreakdownResponse": {
            "type": "object",
            "properties": {
                "members": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.MemberTotalsResponse"
                    }
                },
                "window": {
                    "$ref": "#/definitions/dto.WindowResponse"
                }
            }
        },
        "dto.MemberResponse": {
            "type": "object",
            "properties": {
                "joinedAt": {
                    "type": "string"
                },
                "role": {
                    "$ref": "#/definitions/domain.MemberRole"
                },
                "userID": {
                    "type": "string"
                },
                "userName": {
                    "type": "string"
                },
                "workspaceID": {
                    "type": "string"
                }
            }
        },
        "dto.MemberTotalsResponse": {
            "type": "object",
            "properties": {
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CategoryTotalResponse"
                    }
                },
                "memberID": {
                    "type": "string"
                },
                "total": {
                    "$ref": "#/definitions/dto.Money"
                }
            }
        },
        "dto.Money": {
            "type": "object",
            "properties": {
                "display": {
                    "type": "string"
                },
                "value": {
                    "type": "number"
                }
            }
        },
        "dto.MonthTotalResponse": {
            "type": "object",
            "properties": {
                "endMs": {
                    "type": "integer"
                },
                "label": {
                    "type": "string"
                },
                "startMs": {
                    "type": "integer"
                },
                "total": {
                    "$ref": "#/definitions/dto.Money"
                }
            }
        },
        "dto.PooledRemainingResponse": {
            "type": "object",
            "properties": {
                "remaining": {
                    "$ref": "#/definitions/dto.Money"
                },
                "spent": {
                    "$ref": "#/definitions/dto.Money"
                },
                "target": {
                    "$ref": "#/definitions/dto.Money"
                },
                "window": {
                    "$ref": "#/definitions/dto.WindowResponse"
                }
            }
        },
        "dto.SetCategoryBudgetRequest": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "number",
                    "minimum": 0
                }
            }
        },
        "dto.SetOverallLimitRequest": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "number",
                    "minimum": 0
                }
            }
        },
        "dto.SettlementResponse": {
            "type": "object",
            "properties": {
                "balances": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.MemberBalanceResponse"
                    }
                },
                "myBalance": {
                    "$ref": "#/definitions/dto.Money"
                },
                "policy": {
                    "$ref": "#/definitions/domain.SplitMethod"
                },
                "workspaceID": {
                    "type": "string"
                }
            }
        },
        "dto.SummaryResponse": {
            "type": "object",
            "properties": {
                "budget": {
                    "$ref": "#/definitions/dto.BudgetComparisonResponse"
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CategoryTotalResponse"
                    }
                },
                "pooledRemaining": {
                    "$ref": "#/definitions/dto.Money"
                },
                "settlement": {
                    "$ref": "#/definitions/dto.SettlementResponse"
                },
                "trend": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.MonthTotalResponse"
                    }
                },
                "window": {
                    "$ref": "#/definitions/dto.WindowResponse"
                },
                "workspace": {
                    "$ref": "#/definitions/dto.WorkspaceResponse"
                }
            }
        },
        "dto.TrendResponse": {
            "type": "object",
            "properties": {
                "months": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.MonthTotalResponse"
                    }
                }
            }
        },
        "dto.UpdateExpenseRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "minimum": 0
                },
                "category": {
                    "type": "string",
                    "maxLength": 64
                },
                "clearSplit": {
                    "type": "boolean"
                },
                "date": {
                    "type": "string"
                },
                "description": {
                    "type": "string",
                    "maxLength": 500
                },
                "isRecurring": {
                    "type": "boolean"
                },
                "splitDetails": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    }
                }
            }
        },
        "dto.UpdateSplitPolicyRequest": {
            "type": "object",
            "required": [
                "splitMethod"
            ],
            "properties": {
                "ownerShare": {
                    "type": "number",
                    "minimum": 0,
                    "maximum": 100
                },
                "splitMethod": {
                    "$ref": "#/definitions/domain.SplitMethod"
                }
            }
        },
        "dto.WindowResponse": {
            "type": "object",
            "properties": {
                "endMs": {
                    "type": "integer"
                },
                "startMs": {
                    "type": "integer"
                }
            }
        },
        "dto.WorkspaceResponse": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "customSplitConfig": {
                    "type": "object"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "monthlyBudget": {
                    "$ref": "#/definitions/dto.Money"
                },
                "monthlyTarget": {
                    "$ref": "#/definitions/dto.Money"
                },
                "name": {
                    "type": "string"
                },
                "splitMethod": {
                    "$ref": "#/definitions/domain.SplitMethod"
                },
                "type": {
                    "$ref": "#/definitions/domain.WorkspaceType"
                },
                "workspaceID": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Household Ledger API",
	Description:      "Shared and personal household expenses with category reports, budgets and settlements.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
