package handlers

import (
	"fmt"
	"net/http"
	"time"

	"coursecatalog/auth"
	"coursecatalog/models"
	"coursecatalog/repository"
	"coursecatalog/utils"
)

type TranscriptHandler struct {
	Users   repository.UserRepository
	Courses repository.CourseRepository
}

type transcriptUploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

// Transcript renders the caller's enrolled courses as a PDF. With object
// storage configured the file is uploaded and its public URL returned;
// otherwise the bytes are streamed directly.
func (h *TranscriptHandler) Transcript(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	user, err := h.Users.GetUserByID(claims.UserID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}
	if user == nil {
		writeMessage(w, http.StatusNotFound, "User not found.")
		return
	}

	courses, err := h.Courses.GetCoursesByIDs(user.EnrolledCourses)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}

	data := models.TranscriptData{
		Email:       user.Email,
		Role:        user.Role,
		Courses:     courses,
		CourseCount: len(courses),
		GeneratedAt: time.Now().Format("02-Jan-2006"),
	}

	pdfBytes, err := utils.GenerateTranscriptPDF(data)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to generate transcript: "+err.Error())
		return
	}

	filename := fmt.Sprintf("transcript_%s_%d.pdf", user.ID, time.Now().Unix())

	if utils.R2Configured() {
		fileURL, err := utils.UploadToR2(pdfBytes, filename)
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "Failed to upload transcript: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, transcriptUploadResponse{Success: true, URL: fileURL})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
