package gemini_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/infra/gemini"
	"github.com/gitoon/gitoon/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("create client with API key", func(t *testing.T) {
		client, err := gemini.New(ctx, "dummy-key")
		gt.NoError(t, err)
		gt.V(t, client).NotEqual(nil)
	})

	t.Run("create without API key fails", func(t *testing.T) {
		_, err := gemini.New(ctx, "")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func newFakeServer(t *testing.T, handler http.HandlerFunc) *gemini.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := gemini.New(context.Background(), "dummy-key", gemini.WithBaseURL(srv.URL))
	gt.NoError(t, err)
	return client
}

func TestGenerateJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the text of the first candidate", func(t *testing.T) {
		var gotPath, gotBody string
		client := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)

			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"candidates": [{"content": {"role": "model", "parts": [{"text": "[{\"title\": \"t\"}]"}]}, "finishReason": "STOP"}]}`)
		})

		text := gt.R1(client.GenerateJSON(ctx, "you write comics", "here are the commits")).NoError(t)

		gt.V(t, text).Equal(`[{"title": "t"}]`)
		gt.True(t, strings.Contains(gotPath, gemini.DefaultTextModel))
		gt.True(t, strings.Contains(gotBody, "you write comics"))
		gt.True(t, strings.Contains(gotBody, "here are the commits"))
		gt.True(t, strings.Contains(gotBody, "application/json"))
	})

	t.Run("empty response is transient", func(t *testing.T) {
		client := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"candidates": []}`)
		})

		_, err := client.GenerateJSON(ctx, "sys", "user")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrTransient))
	})

	t.Run("server error is transient", func(t *testing.T) {
		client := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"error": {"code": 500, "message": "internal", "status": "INTERNAL"}}`)
		})

		_, err := client.GenerateJSON(ctx, "sys", "user")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrTransient))
	})

	t.Run("rejected request is not transient", func(t *testing.T) {
		client := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error": {"code": 400, "message": "API key not valid", "status": "INVALID_ARGUMENT"}}`)
		})

		_, err := client.GenerateJSON(ctx, "sys", "user")
		gt.Error(t, err)
		gt.False(t, errors.Is(err, types.ErrTransient))
	})
}

func TestGenerateImage(t *testing.T) {
	ctx := context.Background()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var pngBuf bytes.Buffer
	gt.NoError(t, png.Encode(&pngBuf, img))
	pngData := pngBuf.Bytes()

	t.Run("returns the first inline image part", func(t *testing.T) {
		var gotPath string
		client := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")

			resp := map[string]any{
				"candidates": []map[string]any{{
					"content": map[string]any{
						"role": "model",
						"parts": []map[string]any{
							{"text": "here is your panel"},
							{"inlineData": map[string]any{
								"mimeType": "image/png",
								"data":     base64.StdEncoding.EncodeToString(pngData),
							}},
						},
					},
					"finishReason": "STOP",
				}},
			}
			gt.NoError(t, json.NewEncoder(w).Encode(resp))
		})

		data := gt.R1(client.GenerateImage(ctx, "a knight at dawn")).NoError(t)

		gt.True(t, bytes.Equal(data, pngData))
		gt.True(t, strings.Contains(gotPath, gemini.DefaultImageModel))
	})

	t.Run("text-only response is transient", func(t *testing.T) {
		client := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"candidates": [{"content": {"role": "model", "parts": [{"text": "no image today"}]}}]}`)
		})

		_, err := client.GenerateImage(ctx, "a knight at dawn")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrTransient))
	})

	t.Run("rate limit is transient", func(t *testing.T) {
		client := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"error": {"code": 429, "message": "quota exceeded", "status": "RESOURCE_EXHAUSTED"}}`)
		})

		_, err := client.GenerateImage(ctx, "a knight at dawn")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrTransient))
	})
}

func TestGenerateJSON_Integration(t *testing.T) {
	apiKey := testutil.GetEnvOrSkip(t, "TEST_GEMINI_API_KEY")

	ctx := context.Background()
	client := gt.R1(gemini.New(ctx, types.GeminiAPIKey(apiKey))).NoError(t)

	text, err := client.GenerateJSON(ctx,
		"You return strict JSON with no commentary.",
		"Return a JSON array containing the integers 1 to 4.",
	)
	gt.NoError(t, err)

	var values []int
	gt.NoError(t, json.Unmarshal([]byte(text), &values))
	gt.A(t, values).Length(4)
}
