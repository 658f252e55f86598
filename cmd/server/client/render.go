package client

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/KirkDiggler/pokedex-api/internal/handlers/pokedex/v1alpha1"
)

// printJSON prints a view through its protobuf Struct form, the same bytes
// the server sent
func printJSON(view interface{}) error {
	s, err := v1alpha1.ToStruct(view)
	if err != nil {
		return err
	}

	jsonBytes, err := protojson.MarshalOptions{
		Indent:          "  ",
		EmitUnpopulated: true,
	}.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal response to JSON: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

// typeBadges colors each type name with its display color
func typeBadges(types []v1alpha1.TypeView) string {
	return strings.Join(lo.Map(types, func(t v1alpha1.TypeView, _ int) string {
		rgb, ok := parseHexColor(t.Color)
		if !ok {
			return t.DisplayName
		}
		return rgb.Sprint(t.DisplayName)
	}), " ")
}

// parseHexColor reads "#RRGGBB"
func parseHexColor(hex string) (pterm.RGB, bool) {
	var r, g, b uint8
	if len(hex) != 7 {
		return pterm.RGB{}, false
	}
	if n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil || n != 3 {
		return pterm.RGB{}, false
	}
	return pterm.NewRGB(r, g, b), true
}

// evolutionTreeNode converts a decorated tree into pterm nodes. The edge
// text is printed in front of the stage it leads to.
func evolutionTreeNode(tree *v1alpha1.EvolutionTreeView) pterm.TreeNode {
	node := pterm.TreeNode{Text: speciesLabel(tree.Species)}
	for _, tr := range tree.Transitions {
		if tr.Target == nil {
			continue
		}
		child := evolutionTreeNode(tr.Target)
		if tr.Text != "" {
			child.Text = fmt.Sprintf("%s %s", pterm.Gray("("+tr.Text+")"), child.Text)
		}
		node.Children = append(node.Children, child)
	}
	return node
}

func speciesLabel(v v1alpha1.NamedView) string {
	if v.DisplayName == "" || v.DisplayName == v.Name {
		return fmt.Sprintf("#%d %s", v.ID, v.Name)
	}
	return fmt.Sprintf("#%d %s %s", v.ID, v.DisplayName, pterm.Gray(v.Name))
}

func renderFallbacks(fallbacks []v1alpha1.LookupView) {
	if len(fallbacks) == 0 {
		return
	}
	pterm.Warning.Printf("%d lookups fell back to canonical names\n", len(fallbacks))
	for _, f := range fallbacks {
		pterm.Printf("  %s %s/%d %s\n", pterm.Gray("→"), f.Kind, f.ResourceID, pterm.Yellow(f.Name))
	}
}
