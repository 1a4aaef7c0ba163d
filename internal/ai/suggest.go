package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

func titleWords(s string) string {
	parts := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func contextLine(projectContext string) string {
	if projectContext == "" {
		return ""
	}
	return "Context: " + projectContext + "\n"
}

func existingBlock(label string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(label + "\n")
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
	return b.String()
}

// CSDSuggestions proposes items for one CSD matrix category.
func (c *Client) CSDSuggestions(ctx context.Context, projectName, category, projectContext string, existing []string) ([]string, error) {
	prompt := fmt.Sprintf(`You are a product discovery expert helping a team with their Certainty-Supposition-Doubt (CSD) Matrix.

Project: %s
Category: %s
%s%s
Based on the project name and any context provided, please suggest 3-5 concise, clear, and insightful items for the %s category of the CSD Matrix.

Certainties = What we know for sure
Suppositions = What we believe but aren't certain about
Doubts = What we're unsure about and need to investigate

Return ONLY the suggestions, one per line, with no numbering, headers, or other text.`,
		projectName, category, contextLine(projectContext),
		existingBlock("Existing items in this category:", existing), category)

	content, err := c.Complete(ctx, prompt, 1000, 0.7)
	if err != nil {
		return nil, err
	}
	return ParseLines(content), nil
}

// PVBSuggestions proposes content for one Product Vision Board section.
func (c *Client) PVBSuggestions(ctx context.Context, projectName, section, projectContext string) ([]string, error) {
	sectionNames := map[string]string{
		"vision":           "Vision Statement",
		"target_customers": "Target Customers",
		"customer_needs":   "Customer Needs/Problems",
		"product_features": "Product Features",
		"business_goals":   "Business Goals",
	}
	display, ok := sectionNames[section]
	if !ok {
		display = titleWords(section)
	}
	prompt := fmt.Sprintf(`You are a product strategy expert helping a team with their Product Vision Board.

Project: %s
Section: %s
%s
Based on the project name and any context provided, please provide 3-5 concise, clear, and strategic suggestions for the %s section of the Product Vision Board.

Return ONLY the suggestions, one per line, with no numbering, headers, or other text.`,
		projectName, display, contextLine(projectContext), display)

	content, err := c.Complete(ctx, prompt, 1000, 0.7)
	if err != nil {
		return nil, err
	}
	return ParseLines(content), nil
}

// BMCSuggestions proposes content for one Business Model Canvas block.
func (c *Client) BMCSuggestions(ctx context.Context, projectName, section, projectContext string) ([]string, error) {
	sectionNames := map[string]string{
		"key_partners":           "Key Partners",
		"key_activities":         "Key Activities",
		"key_resources":          "Key Resources",
		"value_propositions":     "Value Propositions",
		"customer_relationships": "Customer Relationships",
		"channels":               "Channels",
		"customer_segments":      "Customer Segments",
		"cost_structure":         "Cost Structure",
		"revenue_streams":        "Revenue Streams",
	}
	display, ok := sectionNames[section]
	if !ok {
		display = titleWords(section)
	}
	prompt := fmt.Sprintf(`You are a business model expert helping a team with their Business Model Canvas.

Project: %s
Section: %s
%s
Based on the project name and any context provided, please provide 3-5 concise, clear, and insightful suggestions for the %s section of the Business Model Canvas.

Return ONLY the suggestions, one per line, with no numbering, headers, or other text.`,
		projectName, display, contextLine(projectContext), display)

	content, err := c.Complete(ctx, prompt, 1000, 0.7)
	if err != nil {
		return nil, err
	}
	return ParseLines(content), nil
}

// OKRObjectiveSuggestions proposes objective statements.
func (c *Client) OKRObjectiveSuggestions(ctx context.Context, projectName, projectContext string) ([]string, error) {
	prompt := fmt.Sprintf(`You are an OKR expert helping a team define clear Objectives for their project.

Project: %s
%s
Based on the project name and any context provided, please provide 3-5 concise, clear, and inspiring Objective statements that follow OKR best practices.

Good Objectives should be:
- Qualitative, inspirational, and action-oriented
- Time-bound (typically quarterly or annually)
- Challenging yet achievable

Return ONLY the objective statements, one per line, with no numbering, headers, or other text.`,
		projectName, contextLine(projectContext))

	content, err := c.Complete(ctx, prompt, 1000, 0.7)
	if err != nil {
		return nil, err
	}
	return ParseLines(content), nil
}

// OKRKeyResultSuggestions proposes measurable key results for an objective.
func (c *Client) OKRKeyResultSuggestions(ctx context.Context, projectName, objective, projectContext string) ([]string, error) {
	prompt := fmt.Sprintf(`You are an OKR expert helping a team define measurable Key Results.

Project: %s
Objective: %s
%s
Based on the objective above, please provide 3-5 concise, measurable Key Result statements. Each should contain a concrete metric and target value.

Return ONLY the key result statements, one per line, with no numbering, headers, or other text.`,
		projectName, objective, contextLine(projectContext))

	content, err := c.Complete(ctx, prompt, 1000, 0.7)
	if err != nil {
		return nil, err
	}
	return ParseLines(content), nil
}

// PersonaDetailSuggestions proposes entries for one persona section.
func (c *Client) PersonaDetailSuggestions(ctx context.Context, projectName, category, projectContext string) ([]string, error) {
	prompt := fmt.Sprintf(`You are a UX research expert helping a team flesh out a user persona.

Project: %s
Persona section: %s
%s
Based on the project name and any context provided, please provide 3-5 concise, realistic entries for the %s section of the persona.

Return ONLY the entries, one per line, with no numbering, headers, or other text.`,
		projectName, category, contextLine(projectContext), category)

	content, err := c.Complete(ctx, prompt, 1000, 0.7)
	if err != nil {
		return nil, err
	}
	return ParseLines(content), nil
}

// RoadmapSuggestions proposes roadmap entries for one timeframe or category.
func (c *Client) RoadmapSuggestions(ctx context.Context, projectName, category, projectContext string, existing []string) ([]string, error) {
	prompt := fmt.Sprintf(`You are a product roadmap expert helping a team plan their roadmap.

Project: %s
Category: %s
%s%s
Based on the project name and any context provided, please suggest 3-5 concise roadmap item names for the %s category.

Return ONLY the suggestions, one per line, with no numbering, headers, or other text.`,
		projectName, category, contextLine(projectContext),
		existingBlock("Existing roadmap items:", existing), category)

	content, err := c.Complete(ctx, prompt, 1000, 0.7)
	if err != nil {
		return nil, err
	}
	return ParseLines(content), nil
}

// RICEFeature is one AI-drafted prioritization candidate.
type RICEFeature struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	ReachScore      int    `json:"reach_score"`
	ImpactScore     int    `json:"impact_score"`
	ConfidenceScore int    `json:"confidence_score"`
	EffortScore     int    `json:"effort_score"`
}

// RICESuggestions asks for JSON-shaped feature drafts with scores.
func (c *Client) RICESuggestions(ctx context.Context, projectName, projectContext string, existing []string) ([]RICEFeature, error) {
	prompt := fmt.Sprintf(`You are a product prioritization expert helping a team score features with the RICE method.

Project: %s
%s%s
Please suggest 3-5 features for this project. For each feature provide reach, impact and confidence scores from 0-10 and an effort score from 1-10.

Respond with a JSON array only, no other text, where each element has this shape:
{"name": "...", "description": "...", "reach_score": 5, "impact_score": 5, "confidence_score": 5, "effort_score": 5}`,
		projectName, contextLine(projectContext),
		existingBlock("Existing features (do not repeat these):", existing))

	content, err := c.Complete(ctx, prompt, 1500, 0.8)
	if err != nil {
		return nil, err
	}
	var features []RICEFeature
	if err := json.Unmarshal([]byte(ExtractJSON(content)), &features); err != nil {
		return nil, fmt.Errorf("50201:AI returned malformed suggestion JSON: %v", err)
	}
	return features, nil
}
