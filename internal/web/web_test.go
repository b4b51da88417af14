package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"

	"calckit/internal/catalog"
	"calckit/internal/client"
	"calckit/internal/domain"
	"calckit/internal/services/calculator"
	"calckit/internal/store"
	"calckit/internal/web"
)

// newHandler builds the site over the default catalog with in-memory history.
func newHandler(t *testing.T, opts ...web.Option) (http.Handler, *calculator.Service) {
	t.Helper()
	svc := calculator.New(catalog.Default(), calculator.WithHistory(store.NewMemory()))
	srv, err := web.New(svc, append([]web.Option{web.WithHistory(svc)}, opts...)...)
	if err != nil {
		t.Fatalf("web.New: %v", err)
	}
	return srv.Handler(), svc
}

func do(h http.Handler, method, target string, body io.Reader, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	h, _ := newHandler(t)
	rec := do(h, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("wanted: 200 ok\ngot: %d %q", rec.Code, rec.Body.String())
	}
}

func TestIndex_ListsCategories(t *testing.T) {
	h, _ := newHandler(t)
	rec := do(h, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("wanted: 200\ngot: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Tip Calculator", "Financial", "Developer Tools", `href="/c/molar-mass"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("index is missing %q", want)
		}
	}
}

func TestCalculatorPage(t *testing.T) {
	h, svc := newHandler(t, web.WithBaseURL("https://calc.example/"))

	t.Run("should render the form with JSON-LD and an ETag", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/c/tip", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("wanted: 200\ngot: %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, `"@type":"WebApplication"`) {
			t.Fatal("missing WebApplication JSON-LD")
		}
		if !strings.Contains(body, `"url":"https://calc.example/c/tip"`) {
			t.Fatal("JSON-LD url does not use the base URL")
		}
		if !strings.Contains(body, `name="bill"`) {
			t.Fatal("missing bill input")
		}
		etag := rec.Header().Get("ETag")
		if etag == "" {
			t.Fatal("missing ETag")
		}

		again := do(h, http.MethodGet, "/c/tip", nil, "If-None-Match", etag)
		if again.Code != http.StatusNotModified {
			t.Fatalf("wanted: 304\ngot: %d", again.Code)
		}
	})

	t.Run("should compute on POST and record history", func(t *testing.T) {
		form := url.Values{"bill": {"100"}, "percent": {"20"}, "people": {"2"}}
		rec := do(h, http.MethodPost, "/c/tip", strings.NewReader(form.Encode()),
			"Content-Type", "application/x-www-form-urlencoded")
		if rec.Code != http.StatusOK {
			t.Fatalf("wanted: 200\ngot: %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "$60.00 per person") {
			t.Fatal("result summary not rendered")
		}
		entries, err := svc.History(context.Background(), domain.HistoryFilter{Slug: "tip"})
		if err != nil {
			t.Fatalf("History: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("wanted: 1 entry\ngot: %d", len(entries))
		}
	})

	t.Run("should show validation errors inline", func(t *testing.T) {
		form := url.Values{"bill": {"100"}, "percent": {"20"}, "people": {"0"}}
		rec := do(h, http.MethodPost, "/c/tip", strings.NewReader(form.Encode()),
			"Content-Type", "application/x-www-form-urlencoded")
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("wanted: 422\ngot: %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, `class="error"`) || !strings.Contains(body, `class="invalid"`) {
			t.Fatal("error not rendered next to the field")
		}
		if strings.Contains(body, `class="summary"`) {
			t.Fatal("result should be cleared on error")
		}
	})

	t.Run("should 404 unknown calculators", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/c/no-such-thing", nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("wanted: 404\ngot: %d", rec.Code)
		}
	})
}

func TestSitemap(t *testing.T) {
	h, _ := newHandler(t, web.WithBaseURL("https://calc.example"))
	rec := do(h, http.MethodGet, "/sitemap.xml", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("wanted: 200\ngot: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`,
		"<loc>https://calc.example/</loc>",
		"<loc>https://calc.example/c/amortization</loc>",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("sitemap is missing %q", want)
		}
	}
}

func TestBrotliCompression(t *testing.T) {
	h, _ := newHandler(t)
	rec := do(h, http.MethodGet, "/", nil, "Accept-Encoding", "br, gzip")
	if got := rec.Header().Get("Content-Encoding"); got != "br" {
		t.Fatalf("wanted: br\ngot: %q", got)
	}
	plain, err := io.ReadAll(brotli.NewReader(rec.Body))
	if err != nil {
		t.Fatalf("brotli decode: %v", err)
	}
	if !bytes.Contains(plain, []byte("Tip Calculator")) {
		t.Fatal("decoded body is not the index page")
	}
}

func TestAPI(t *testing.T) {
	h, _ := newHandler(t)

	t.Run("should list calculators by category", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/calculators?category=science", nil)
		var got []domain.Calculator
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got) == 0 || got[0].Slug != "molar-mass" {
			t.Fatalf("unexpected list: %+v", got)
		}
		if rec := do(h, http.MethodGet, "/api/calculators?category=astrology", nil); rec.Code != http.StatusBadRequest {
			t.Fatalf("wanted: 400\ngot: %d", rec.Code)
		}
	})

	t.Run("should run a calculator", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/calculators/tip",
			strings.NewReader(`{"inputs":{"bill":"100","percent":"20","people":"2"}}`))
		if rec.Code != http.StatusOK {
			t.Fatalf("wanted: 200\ngot: %d %s", rec.Code, rec.Body.String())
		}
		var res domain.Result
		if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if res.Summary != "$60.00 per person" {
			t.Fatalf("wanted: %q\ngot: %q", "$60.00 per person", res.Summary)
		}
	})

	t.Run("should return 422 with the field", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/calculators/tip",
			strings.NewReader(`{"inputs":{"bill":"100","percent":"20","people":"0"}}`))
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("wanted: 422\ngot: %d", rec.Code)
		}
		var apiErr domain.APIError
		_ = json.NewDecoder(rec.Body).Decode(&apiErr)
		if apiErr.Field != "people" || apiErr.Error == "" {
			t.Fatalf("unexpected error body: %+v", apiErr)
		}
	})

	t.Run("should return 404 for unknown slugs", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/calculators/nope", strings.NewReader(`{"inputs":{}}`))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("wanted: 404\ngot: %d", rec.Code)
		}
	})

	t.Run("should reject malformed bodies", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/calculators/tip", strings.NewReader(`{"bill":`))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("wanted: 400\ngot: %d", rec.Code)
		}
	})
}

func TestAPI_HistoryDisabled(t *testing.T) {
	svc := calculator.New(catalog.Default())
	srv, err := web.New(svc)
	if err != nil {
		t.Fatalf("web.New: %v", err)
	}
	rec := do(srv.Handler(), http.MethodGet, "/api/history", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("wanted: 409\ngot: %d", rec.Code)
	}
}

func TestClientAgainstServer(t *testing.T) {
	h, _ := newHandler(t)
	ts := httptest.NewServer(h)
	defer ts.Close()

	c := client.NewHTTP(ts.URL, ts.Client())
	ctx := context.Background()

	calc, err := c.Describe(ctx, "circle")
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if calc.Title == "" || len(calc.Fields) == 0 {
		t.Fatalf("unexpected schema: %+v", calc)
	}

	in := domain.Inputs{"radius": "2"}
	res, err := c.Run(ctx, "circle", in)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	entry, err := c.Record(ctx, "circle", in, res)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if entry.Summary != res.Summary {
		t.Fatalf("wanted: %q\ngot: %q", res.Summary, entry.Summary)
	}

	list, err := c.History(ctx, domain.HistoryFilter{Slug: "circle"})
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(list) != 1 || list[0].ID != entry.ID {
		t.Fatalf("unexpected history: %+v", list)
	}

	if err := c.ClearHistory(ctx); err != nil {
		t.Fatalf("ClearHistory: %v", err)
	}

	_, err = c.Run(ctx, "circle", domain.Inputs{"radius": "-1"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "radius" {
		t.Fatalf("wanted: validation error on radius\ngot: %v", err)
	}
}

func TestPrettyHTML(t *testing.T) {
	h, _ := newHandler(t, web.WithPrettyHTML(true), web.WithCompression(false))
	rec := do(h, http.MethodGet, "/c/circle", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("wanted: 200\ngot: %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Circle Calculator") || !strings.Contains(body, "\n  ") {
		t.Fatalf("page not indented:\n%s", body)
	}
}

func TestNotFound_API(t *testing.T) {
	h, _ := newHandler(t)
	rec := do(h, http.MethodGet, "/api/nothing", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("wanted: 404\ngot: %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("wanted: application/json\ngot: %q", ct)
	}
}
