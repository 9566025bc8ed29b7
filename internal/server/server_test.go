package server_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/icza/mighty"
	"github.com/mewkiz/psy/internal/psytest"
	"github.com/mewkiz/psy/internal/server"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// upload returns a POST /api/v1/parse request carrying data as field.
func upload(t *testing.T, field string, data []byte) *http.Request {
	t.Helper()
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile(field, "song.psy")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// parseReply is ParseResponse with the file decoded loosely.
type parseReply struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Tag     string                 `json:"tag"`
	File    map[string]interface{} `json:"file"`
}

func serve(t *testing.T, req *http.Request) (int, parseReply) {
	t.Helper()
	router := server.NewRouter(server.NewHandler(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var reply parseReply
	if err := json.Unmarshal(w.Body.Bytes(), &reply); err != nil {
		t.Fatalf("invalid JSON reply %q; %v", w.Body.String(), err)
	}
	return w.Code, reply
}

func TestParse(t *testing.T) {
	eq := mighty.Eq(t)
	code, reply := serve(t, upload(t, "file", psytest.Example().Bytes()))
	eq(http.StatusOK, code)
	eq(true, reply.Success)
	eq("PSY16ALP", reply.File["psy_version"])
	eq(float64(3), reply.File["chunk_version"])
	eq(float64(1), reply.File["chunk_count"])
	eq("Test Song", reply.File["title"])
	eq("Me", reply.File["artist"])
}

func TestParseErrors(t *testing.T) {
	sngi := psytest.Example()
	sngi.Tag = "SNGI"
	golden := []struct {
		name  string
		field string
		data  []byte
		code  int
		tag   string
	}{
		{name: "unexpected chunk", field: "file", data: sngi.Bytes(), code: http.StatusUnprocessableEntity, tag: "SNGI"},
		{name: "truncated", field: "file", data: psytest.Example().Bytes()[:12], code: http.StatusUnprocessableEntity},
		{name: "missing field", field: "song", data: psytest.Example().Bytes(), code: http.StatusBadRequest},
	}
	for _, g := range golden {
		code, reply := serve(t, upload(t, g.field, g.data))
		if code != g.code {
			t.Errorf("%s: status mismatch; expected %d, got %d", g.name, g.code, code)
		}
		if reply.Success {
			t.Errorf("%s: unexpected success", g.name)
		}
		if reply.Tag != g.tag {
			t.Errorf("%s: tag mismatch; expected %q, got %q", g.name, g.tag, reply.Tag)
		}
		if reply.File != nil {
			t.Errorf("%s: unexpected file in reply", g.name)
		}
	}
}

func TestHealthCheck(t *testing.T) {
	router := server.NewRouter(server.NewHandler(), []string{"http://localhost:3000"})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	eq := mighty.Eq(t)
	eq(http.StatusOK, w.Code)
	eq("http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
