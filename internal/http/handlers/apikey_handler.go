// API key HTTP handlers.
//
// This file exposes credential issuance:
//   - GET /keys/new  (mint a new API key)
//
// The plaintext key appears only in this response; the server keeps a bcrypt
// hash and cannot reproduce the key afterwards.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IssueKeyResponse carries a freshly issued credential. Store the api_key
// value on receipt: it is shown exactly once.
type IssueKeyResponse struct {
	UserID string `json:"user_id" example:"0b9af1b9-5c6b-4bd0-9e55-0dbdd4f3f2a3"`
	APIKey string `json:"api_key" example:"3f27c807-33c3-47ad-bf3f-4bd76e7f2f5f"`
}

// IssueKey godoc
// @ID          issueKey
// @Summary     Issue a new API key
// @Description Generates a user id and a random API key. Only a one-way hash is stored server-side; the plaintext key is returned once and cannot be recovered.
// @Tags        Keys
// @Produce     json
//
// @Success     200  {object} handlers.IssueKeyResponse
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /keys/new [get]
func (h *Handlers) IssueKey(c *gin.Context) {
	userID, key, err := h.creds.Issue(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeIssueFailed, "could not issue api key")
		return
	}
	ok(c, http.StatusOK, IssueKeyResponse{UserID: userID, APIKey: key})
}
