// Package v1alpha1 handles the pokedex gRPC service interface
package v1alpha1

import (
	"context"
	"math"
	"strings"

	"golang.org/x/text/language"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/localization"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/evolution"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex"
)

// LocaleMetadataKey carries the caller's preferred locales, Accept-Language style
const LocaleMetadataKey = "accept-language"

// HandlerConfig holds dependencies for the pokedex handler
type HandlerConfig struct {
	PokedexService   pokedex.Service
	EvolutionService evolution.Service
	// DefaultLocales apply when a request names none (optional)
	DefaultLocales []string
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.PokedexService == nil {
		vb.RequiredField("PokedexService")
	}
	if c.EvolutionService == nil {
		vb.RequiredField("EvolutionService")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if len(c.DefaultLocales) == 0 {
		c.DefaultLocales = localization.DefaultLocales
	}
	return nil
}

// Handler implements PokedexServiceServer
type Handler struct {
	pokedexService   pokedex.Service
	evolutionService evolution.Service
	defaultLocales   []string
}

var _ PokedexServiceServer = (*Handler)(nil)

// NewHandler creates a new pokedex handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		pokedexService:   cfg.PokedexService,
		evolutionService: cfg.EvolutionService,
		defaultLocales:   cfg.DefaultLocales,
	}, nil
}

// ListEntries returns one annotated listing page
func (h *Handler) ListEntries(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()

	vb := errors.NewValidationBuilder()
	limit := intField(fields, "limit", vb)
	offset := intField(fields, "offset", vb)
	requested := stringsField(fields, "locales", vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.pokedexService.ListEntries(ctx, &pokedex.ListEntriesInput{
		Limit:   limit,
		Offset:  offset,
		Locales: h.locales(ctx, requested),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	view := &ListEntriesView{
		Entries:    make([]EntrySummaryView, 0, len(output.Entries)),
		Total:      output.Total,
		NextOffset: output.NextOffset,
		HasMore:    output.HasMore,
	}
	for _, e := range output.Entries {
		view.Entries = append(view.Entries, summaryView(e))
	}

	return respond(view)
}

// GetEntry returns the detail page for one entry
func (h *Handler) GetEntry(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	id, err := positiveID("id", req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.pokedexService.GetEntry(ctx, &pokedex.GetEntryInput{
		ID:      id,
		Locales: h.locales(ctx, nil),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(detailView(output.Entry, output.Lookups))
}

// GetEvolutionTree returns the decorated tree for one evolution chain
func (h *Handler) GetEvolutionTree(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	chainID, err := positiveID("chain_id", req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.evolutionService.BuildEvolutionTree(ctx, &evolution.BuildEvolutionTreeInput{
		ChainID: chainID,
		Locales: h.locales(ctx, nil),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&EvolutionTreeResponseView{
		ChainID:     chainID,
		TraversalID: output.TraversalID,
		Tree:        treeView(output.Tree),
		Fallbacks:   fallbackViews(output.Lookups),
	})
}

// locales prefers the request's own list, then the accept-language
// metadata, then the configured defaults.
func (h *Handler) locales(ctx context.Context, requested []string) []string {
	if len(requested) > 0 {
		return requested
	}
	if fromMeta := metadataLocales(ctx); len(fromMeta) > 0 {
		return fromMeta
	}
	return h.defaultLocales
}

func metadataLocales(ctx context.Context) []string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil
	}

	var locales []string
	for _, header := range md.Get(LocaleMetadataKey) {
		tags, _, err := language.ParseAcceptLanguage(header)
		if err != nil {
			continue
		}
		for _, tag := range tags {
			locales = append(locales, tag.String())
		}
	}
	return locales
}

func respond(view interface{}) (*structpb.Struct, error) {
	s, err := ToStruct(view)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return s, nil
}

func positiveID(field string, req *wrapperspb.Int64Value) (int, error) {
	v := req.GetValue()
	if v <= 0 || v > math.MaxInt32 {
		return 0, errors.NewValidationBuilder().
			Fieldf(field, "must be a positive id, got %d", v).
			Build()
	}
	return int(v), nil
}

func intField(fields map[string]*structpb.Value, name string, vb *errors.ValidationBuilder) int {
	v, ok := fields[name]
	if !ok {
		return 0
	}
	n, isNumber := v.GetKind().(*structpb.Value_NumberValue)
	if !isNumber || n.NumberValue != math.Trunc(n.NumberValue) ||
		math.Abs(n.NumberValue) > math.MaxInt32 {
		vb.Field(name, "must be an integer")
		return 0
	}
	return int(n.NumberValue)
}

func stringsField(fields map[string]*structpb.Value, name string, vb *errors.ValidationBuilder) []string {
	v, ok := fields[name]
	if !ok {
		return nil
	}

	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		// "zh-Hans,zh-Hant" is accepted as a shorthand
		return splitList(kind.StringValue)
	case *structpb.Value_ListValue:
		var out []string
		for _, item := range kind.ListValue.GetValues() {
			s, isString := item.GetKind().(*structpb.Value_StringValue)
			if !isString {
				vb.Field(name, "must be a list of strings")
				return nil
			}
			out = append(out, s.StringValue)
		}
		return out
	default:
		vb.Field(name, "must be a list of strings")
		return nil
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
