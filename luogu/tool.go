package luogu

import (
	"context"
	"fmt"
	"regexp"

	"github.com/a48zhang/luogu-mcp/mcp"
)

// problemIDPattern accepts prefixed external-system identifiers (P1001,
// B2002, CF1234A, AT_abc123_a), not just the bare numeric-suffix form.
var problemIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ValidProblemID reports whether id is a well-formed problem identifier
func ValidProblemID(id string) bool {
	return problemIDPattern.MatchString(id)
}

// GetProblemTool builds the get_problem tool handler backed by the given
// client. Failures of the tool itself (missing or malformed argument,
// transport fault) are reported inside the result envelope, never as a
// protocol error: the protocol succeeded, the tool failed.
func GetProblemTool(client *Client) mcp.ToolHandler {
	return mcp.ToolHandler{
		Tool: mcp.Tool{
			Name:        "get_problem",
			Description: "Fetch a Luogu problem by id and return its statement, input/output formats, samples, difficulty and tags as markdown.",
			InputSchema: mcp.InputSchema{
				Type: "object",
				Properties: map[string]mcp.Property{
					"problem_id": {
						Type:        "string",
						Description: "Problem identifier, e.g. P1001, B2002, CF1234A or AT_abc123_a",
					},
				},
				Required: []string{"problem_id"},
			},
			Annotations: &mcp.ToolAnnotations{
				Title:         "Get Luogu Problem",
				ReadOnlyHint:  true,
				OpenWorldHint: true,
			},
		},
		Call: func(ctx context.Context, args map[string]any) mcp.ToolCallResult {
			raw, ok := args["problem_id"]
			if !ok {
				return mcp.ErrorResult(`missing required argument "problem_id"`)
			}
			id, ok := raw.(string)
			if !ok {
				return mcp.ErrorResult(fmt.Sprintf(`argument "problem_id" must be a string, got %T`, raw))
			}
			if !ValidProblemID(id) {
				return mcp.ErrorResult(fmt.Sprintf(
					"invalid format: %q is not a problem id (expected a letter followed by letters, digits or underscores, e.g. P1001, B2002, CF1234A, AT_abc123_a)", id))
			}

			problem, url, err := client.FetchProblem(ctx, id)
			if err != nil {
				return mcp.ErrorResult(fmt.Sprintf("failed to fetch problem %s: %v", id, err))
			}

			return mcp.TextResult(Format(problem, id, url))
		},
	}
}
