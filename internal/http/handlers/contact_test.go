package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"outreach/internal/storage"
)

func multipartRequest(t *testing.T, fields map[string]string, filename string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/contact/send-message", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return payload
}

var contactFields = map[string]string{"name": "Ana", "email": "a@example.com", "subject": "Hello", "message": "hi"}

func TestContactMultipartWithAttachment(t *testing.T) {
	env := newTestEnv(t)
	archive, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	env.app.archive = archive

	rr := httptest.NewRecorder()
	env.app.ContactSendMessage(rr, multipartRequest(t, contactFields, "notes.txt", []byte("plain text notes")))
	payload := decodeBody(t, rr)
	if rr.Code != http.StatusOK || payload["message"] != "Message sent successfully! We will contact you soon." {
		t.Fatalf("status = %d, payload = %v", rr.Code, payload)
	}

	if len(env.relay.sent) != 1 {
		t.Fatalf("sent %d messages", len(env.relay.sent))
	}
	msg := env.relay.sent[0]
	if msg.Subject != "New Contact Us Message - Hello" {
		t.Fatalf("subject = %q", msg.Subject)
	}
	if len(msg.Attachments) != 1 || msg.Attachments[0].Filename != "notes.txt" || string(msg.Attachments[0].Data) != "plain text notes" {
		t.Fatalf("attachments = %+v", msg.Attachments)
	}
	if !strings.HasPrefix(msg.Attachments[0].ContentType, "text/plain") {
		t.Fatalf("content type = %q", msg.Attachments[0].ContentType)
	}

	matches, err := filepath.Glob(filepath.Join(archive.BasePath(), "contact", "2025-05-06", "*-notes.txt"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("archived files = %v, err = %v", matches, err)
	}
	if data, _ := os.ReadFile(matches[0]); string(data) != "plain text notes" {
		t.Fatalf("archived data = %q", data)
	}
}

func TestContactMultipartWithoutFile(t *testing.T) {
	env := newTestEnv(t)
	rr := httptest.NewRecorder()
	env.app.ContactSendMessage(rr, multipartRequest(t, map[string]string{"name": "Ana", "email": "a@example.com", "message": "hi"}, "", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	msg := env.relay.sent[0]
	if msg.Subject != "New Contact Us Message" || len(msg.Attachments) != 0 {
		t.Fatalf("message = %+v", msg)
	}
	if !strings.Contains(msg.Body, "Phone: N/A\nSubject: N/A") {
		t.Fatalf("body = %q", msg.Body)
	}
}

func TestContactRejectsOversizedFile(t *testing.T) {
	env := newTestEnv(t)
	rr := httptest.NewRecorder()
	env.app.ContactSendMessage(rr, multipartRequest(t, contactFields, "big.bin", bytes.Repeat([]byte("x"), 2<<10)))
	payload := decodeBody(t, rr)
	if rr.Code != http.StatusBadRequest || payload["success"] != false {
		t.Fatalf("status = %d, payload = %v", rr.Code, payload)
	}
	if len(env.relay.sent) != 0 {
		t.Fatalf("relay called for oversized upload")
	}
}

func TestContactJSONBody(t *testing.T) {
	env := newTestEnv(t)
	rr, payload := call(t, env.app.ContactSendMessage, `{"name":"Ana","email":"a@example.com","message":"hi","phone":"0812"}`)
	if rr.Code != http.StatusOK || payload["success"] != true {
		t.Fatalf("status = %d, payload = %v", rr.Code, payload)
	}
	if !strings.Contains(env.relay.sent[0].Body, "Phone: 0812") {
		t.Fatalf("body = %q", env.relay.sent[0].Body)
	}
}
