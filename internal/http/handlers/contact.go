package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"outreach/internal/domain"
	"outreach/internal/notifications"
)

// formOverhead is the allowance for non-file multipart fields and boundaries.
const formOverhead = 1 << 20

var (
	errFileTooLarge = errors.New("file too large")
	errBadForm      = errors.New("invalid form")
)

// ContactSendMessage relays a contact-us message with an optional file. It
// accepts multipart/form-data (file field "file") or a JSON body.
func (a *App) ContactSendMessage(w http.ResponseWriter, r *http.Request) {
	req, attachment, err := a.readContact(w, r)
	switch {
	case errors.Is(err, errFileTooLarge):
		a.fail(w, http.StatusBadRequest, "File exceeds the upload limit")
		return
	case err != nil:
		a.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if missing(req.Name, req.Email, req.Message) {
		a.fail(w, http.StatusBadRequest, "Name, email, and message are required")
		return
	}

	if attachment != nil && a.archive != nil {
		key, err := a.archive.ArchiveContactUpload(r.Context(), attachment.Filename, attachment.Data, a.now())
		if err != nil {
			a.log(r).Warn().Err(err).Msg("archive contact upload failed")
		} else {
			a.log(r).Info().Str("key", key).Msg("contact upload archived")
		}
	}

	a.send(w, r, "Message sent successfully! We will contact you soon.", a.templates.Contact(req, attachment))
}

func (a *App) readContact(w http.ResponseWriter, r *http.Request) (notifications.ContactMessage, *domain.Attachment, error) {
	var req notifications.ContactMessage
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return req, nil, decode(r, &req)
	}

	r.Body = http.MaxBytesReader(w, r.Body, a.uploadMaxBytes+formOverhead)
	if err := r.ParseMultipartForm(a.uploadMaxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, nil, errFileTooLarge
		}
		return req, nil, errBadForm
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	req = notifications.ContactMessage{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
		Subject: r.FormValue("subject"),
		Message: r.FormValue("message"),
	}

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return req, nil, nil
	}
	if err != nil {
		return req, nil, errBadForm
	}
	defer file.Close()
	if header.Size > a.uploadMaxBytes {
		return req, nil, errFileTooLarge
	}
	data, err := io.ReadAll(io.LimitReader(file, a.uploadMaxBytes+1))
	if err != nil {
		return req, nil, errBadForm
	}
	if int64(len(data)) > a.uploadMaxBytes {
		return req, nil, errFileTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return req, &domain.Attachment{Filename: header.Filename, ContentType: contentType, Data: data}, nil
}
