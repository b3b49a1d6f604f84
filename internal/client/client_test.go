package client_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"showboat/internal/client"
)

func TestNewRejectsBadURLs(t *testing.T) {
	if _, err := client.New(""); !errors.Is(err, client.ErrNoRemote) {
		t.Fatalf("expected ErrNoRemote, got %v", err)
	}
	if _, err := client.New("ftp://example.test/receive"); err == nil {
		t.Fatal("expected error for non-http scheme")
	}
	if _, err := client.New("http://example.test/receive"); err != nil {
		t.Fatalf("http URL should be accepted: %v", err)
	}
}

func TestSendPostsFormFields(t *testing.T) {
	var gotContentType string
	var gotForm map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotForm = r.PostForm
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"ok":true}`)
	}))
	defer srv.Close()

	c, err := client.New(srv.URL + "/receive")
	if err != nil {
		t.Fatalf("client.New failed: %v", err)
	}

	err = c.Send(context.Background(), "doc-1", "note", map[string]string{
		"markdown": "hello",
		"title":    "",
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if !strings.HasPrefix(gotContentType, "application/x-www-form-urlencoded") {
		t.Fatalf("unexpected content type: %q", gotContentType)
	}
	if got := gotForm["uuid"]; len(got) != 1 || got[0] != "doc-1" {
		t.Fatalf("uuid missing from form: %#v", gotForm)
	}
	if got := gotForm["command"]; len(got) != 1 || got[0] != "note" {
		t.Fatalf("command missing from form: %#v", gotForm)
	}
	if got := gotForm["markdown"]; len(got) != 1 || got[0] != "hello" {
		t.Fatalf("markdown missing from form: %#v", gotForm)
	}
	if _, present := gotForm["title"]; present {
		t.Fatalf("empty fields must be omitted: %#v", gotForm)
	}
}

func TestSendImagePostsMultipart(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x01}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.FormValue("command") != "image" || r.FormValue("filename") != "chart.png" {
			t.Errorf("unexpected fields: %#v", r.MultipartForm.Value)
		}
		if r.FormValue("alt") != "a chart" {
			t.Errorf("alt missing: %#v", r.MultipartForm.Value)
		}
		file, _, err := r.FormFile("image")
		if err != nil {
			t.Errorf("image part missing: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		if !bytes.Equal(data, payload) {
			t.Errorf("image payload mismatch")
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"ok":true}`)
	}))
	defer srv.Close()

	c, err := client.New(srv.URL + "/receive")
	if err != nil {
		t.Fatalf("client.New failed: %v", err)
	}
	if err := c.SendImage(context.Background(), "doc-1", "chart.png", "a chart", payload); err != nil {
		t.Fatalf("SendImage failed: %v", err)
	}
}

func TestSendSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":"Unknown command: frobnicate"}`)
	}))
	defer srv.Close()

	c, err := client.New(srv.URL + "/receive")
	if err != nil {
		t.Fatalf("client.New failed: %v", err)
	}

	err = c.Send(context.Background(), "doc-1", "frobnicate", nil)
	if err == nil {
		t.Fatal("expected error for rejected command")
	}
	if !strings.Contains(err.Error(), "Unknown command: frobnicate") {
		t.Fatalf("server message should surface: %v", err)
	}
}
