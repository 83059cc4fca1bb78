package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/service/slack"
	"github.com/dirtlot-lab/dirtlot/pkg/usecase"
	"github.com/dirtlot-lab/dirtlot/pkg/utils/errutil"
)

// feedbackHandler records one curation decision per inbound payload.
func feedbackHandler(feedbackUC *usecase.FeedbackUseCase) http.HandlerFunc {
	type response struct {
		Message  string          `json:"message"`
		Feedback *model.Feedback `json:"feedback"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var payload slack.FeedbackPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid feedback payload"), http.StatusBadRequest)
			return
		}

		feedback, err := feedbackUC.Submit(r.Context(), &payload)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		writeJSON(w, r, http.StatusCreated, response{
			Message:  "Feedback processed successfully",
			Feedback: feedback,
		})
	}
}
