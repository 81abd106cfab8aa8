package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"feedapi/internal/middleware"
	"feedapi/internal/service"
)

// PostBody holds the validated text fields shared by create and update.
type PostBody struct {
	Title   string `validate:"required,min=7"`
	Content string `validate:"required,min=5"`
}

type CreatorResponse struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	posts, totalItems, err := h.FeedService.ListPosts(r.Context(), page, h.Cfg.PageSize)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Fetched posts successfully.",
		"posts":      posts,
		"totalItems": totalItems,
	})
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Not authenticated.", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, fmt.Sprintf("File too large (max %d MB).",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			writeError(w, "Could not parse multipart form.", http.StatusBadRequest)
		}
		return
	}

	body := PostBody{
		Title:   strings.TrimSpace(r.FormValue("title")),
		Content: strings.TrimSpace(r.FormValue("content")),
	}
	if err := h.Validate.Struct(body); err != nil {
		writeValidationError(w, "Validation failed; entered data is incorrect.", err)
		return
	}

	image, errResp := h.imageFromForm(r)
	if errResp != nil {
		writeJSON(w, errResp.StatusCode, errResp)
		return
	}

	post, creator, err := h.FeedService.CreatePost(r.Context(), userID, service.CreatePostRequest{
		Title:   body.Title,
		Content: body.Content,
		Image:   image,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Post created successfully!",
		"post":    post,
		"creator": CreatorResponse{ID: creator.UserID, Name: creator.Name},
	})
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	post, err := h.FeedService.GetPost(r.Context(), postID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Post fetched.",
		"post":    post,
	})
}

// UpdatePost accepts either a multipart form carrying a replacement file or
// a JSON body where "image" is the URL the client wants to keep.
func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Not authenticated.", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["postId"]

	var body PostBody
	var imageURL string
	var image *service.ImageUpload

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
			writeError(w, "Could not parse multipart form.", http.StatusBadRequest)
			return
		}

		body.Title = strings.TrimSpace(r.FormValue("title"))
		body.Content = strings.TrimSpace(r.FormValue("content"))
		imageURL = r.FormValue("image")

		var errResp *ErrorResponse
		if image, errResp = h.imageFromForm(r); errResp != nil {
			// A replacement file is optional on update.
			if errResp.Message != "No image provided." {
				writeJSON(w, errResp.StatusCode, errResp)
				return
			}
			image = nil
		}
	} else {
		var req struct {
			Title   string `json:"title"`
			Content string `json:"content"`
			Image   string `json:"image"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, "Invalid request body.", http.StatusBadRequest)
			return
		}
		body.Title = strings.TrimSpace(req.Title)
		body.Content = strings.TrimSpace(req.Content)
		imageURL = req.Image
	}

	if err := h.Validate.Struct(body); err != nil {
		writeValidationError(w, "Validation failed; entered data is incorrect.", err)
		return
	}

	post, err := h.FeedService.UpdatePost(r.Context(), userID, postID, service.UpdatePostRequest{
		Title:    body.Title,
		Content:  body.Content,
		ImageURL: imageURL,
		Image:    image,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Post updated!",
		"post":    post,
	})
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Not authenticated.", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["postId"]

	if err := h.FeedService.DeletePost(r.Context(), userID, postID); err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted post."})
}

// imageFromForm extracts the uploaded image file, rejecting unsupported
// content types. A missing file yields the "No image provided." response so
// callers can decide whether the file is mandatory.
func (h *Handlers) imageFromForm(r *http.Request) (*service.ImageUpload, *ErrorResponse) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, &ErrorResponse{
			Message:    "No image provided.",
			StatusCode: http.StatusUnprocessableEntity,
		}
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		file.Close()
		return nil, &ErrorResponse{
			Message:    "Unsupported image type. Allowed: JPEG, PNG.",
			StatusCode: http.StatusUnprocessableEntity,
		}
	}

	return &service.ImageUpload{
		FileName: header.Filename,
		File:     file,
		Size:     header.Size,
	}, nil
}
