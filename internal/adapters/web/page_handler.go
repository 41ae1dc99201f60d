package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/kamal-hamza/content-hub/internal/core/domain"
	"github.com/kamal-hamza/content-hub/internal/core/services"
	"github.com/kamal-hamza/content-hub/pkg/errs"
)

// LogoURL is the brand mark shown in the page header
const LogoURL = "https://i.postimg.cc/L6DMNQVN/Sats-Logo-Colour-PANTONE-Positive-V1-Sep2024.png"

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageHandler struct {
	responder Responder
	logger    zerolog.Logger
	list      *services.ListService
	now       func() time.Time
}

func newPageHandler(logger zerolog.Logger, list *services.ListService, now func() time.Time) pageHandler {
	logger = logger.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		list:      list,
		now:       now,
	}
}

type categoryTab struct {
	Label  string
	Icon   string
	Href   string
	Active bool
}

type pageItem struct {
	ID          string
	Title       string
	Description string
	Type        string
	Category    string
	ImageURL    string
	Meta        string
	Href        string // Preview URL or external link; empty when inert
	External    bool
}

type pageData struct {
	Query        string
	CategorySlug string
	IsHome       bool
	View         string
	Heading      string
	Categories   []categoryTab
	Items        []pageItem
	EmptyNotice  string
	Preview      *pageItem
	DismissHref  string
	LogoURL      string
	Year         int
}

// stateURL encodes the browse state in a query string. A preview id is only
// carried when set.
func stateURL(query string, category domain.Category, preview string) string {
	v := url.Values{}
	if query != "" {
		v.Set("q", query)
	}
	if category != "" {
		v.Set("category", category.Slug())
	}
	if preview != "" {
		v.Set("preview", preview)
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

// index renders the whole page from ?q=, ?category= and ?preview=.
// An unknown category or preview id is ignored.
func (h pageHandler) index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()

		req := services.ListRequest{Query: params.Get("q")}
		if c, err := domain.ParseCategory(params.Get("category")); err == nil {
			req.Category = c
		}

		resp, err := h.list.Execute(r.Context(), req)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to list assets", err))
			return
		}

		data := pageData{
			Query:        req.Query,
			CategorySlug: "",
			IsHome:       resp.View == services.ViewHome,
			View:         resp.View.String(),
			Heading:      resp.Heading,
			EmptyNotice:  resp.EmptyNotice,
			DismissHref:  stateURL(req.Query, req.Category, ""),
			LogoURL:      LogoURL,
			Year:         h.now().Year(),
		}
		if req.Category != "" {
			data.CategorySlug = req.Category.Slug()
		}

		for _, c := range domain.Categories() {
			data.Categories = append(data.Categories, categoryTab{
				Label:  string(c),
				Icon:   c.Icon(),
				Href:   stateURL(req.Query, c, ""),
				Active: c == req.Category,
			})
		}

		for _, a := range resp.Assets {
			data.Items = append(data.Items, h.item(req, resp.View, a))
		}

		if id := params.Get("preview"); id != "" {
			if asset, err := h.list.Get(r.Context(), id); err == nil && asset.Previewable() {
				item := h.item(req, services.ViewList, *asset)
				data.Preview = &item
			}
		}

		var buf bytes.Buffer
		if err := pageTemplate.Execute(&buf, data); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to render page", err))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := buf.WriteTo(w); err != nil {
			h.logger.Error().Err(err).Msg("error writing page")
		}
	}
}

func (h pageHandler) item(req services.ListRequest, view services.View, a domain.Asset) pageItem {
	item := pageItem{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Type:        a.Type,
		Category:    string(a.Category),
		ImageURL:    a.ImageURL,
	}
	if view == services.ViewPlaybookGrid {
		item.Meta = services.PlaybookMeta
	}

	switch activation := services.Activate(view, a); activation.Kind {
	case services.ActivationPreview:
		item.Href = stateURL(req.Query, req.Category, a.ID)
	case services.ActivationOpenLink:
		item.Href = activation.URL
		item.External = true
	}
	return item
}
