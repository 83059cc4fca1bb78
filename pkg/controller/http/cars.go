package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
	"github.com/dirtlot-lab/dirtlot/pkg/service/affiliate"
	"github.com/dirtlot-lab/dirtlot/pkg/usecase"
	"github.com/dirtlot-lab/dirtlot/pkg/utils/errutil"
	"github.com/dirtlot-lab/dirtlot/pkg/utils/logging"
)

// carResponse is a Car with its outbound links, computed on read.
type carResponse struct {
	*model.Car
	Links affiliate.Links `json:"links"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.From(r.Context()).Error("failed to write response", "error", err)
	}
}

func listCarsHandler(carUC *usecase.CarUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cars, err := carUC.List(r.Context())
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}

		resp := make([]carResponse, len(cars))
		for i, car := range cars {
			resp[i] = carResponse{Car: car, Links: carUC.Links(car)}
		}
		writeJSON(w, r, http.StatusOK, resp)
	}
}

func getCarHandler(carUC *usecase.CarUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.CarID(chi.URLParam(r, "id"))

		car, err := carUC.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, usecase.ErrCarNotFound) {
				errutil.WriteMessage(r.Context(), w, "Car not found", http.StatusNotFound)
				return
			}
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}

		writeJSON(w, r, http.StatusOK, carResponse{Car: car, Links: carUC.Links(car)})
	}
}

func featuredCarHandler(carUC *usecase.CarUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		car, err := carUC.Featured(r.Context())
		if err != nil {
			if errors.Is(err, usecase.ErrNoFeaturedCar) {
				errutil.WriteMessage(r.Context(), w, "No featured car found", http.StatusNotFound)
				return
			}
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}

		writeJSON(w, r, http.StatusOK, carResponse{Car: car, Links: carUC.Links(car)})
	}
}

type createCarRequest struct {
	Make       string `json:"make"`
	Model      string `json:"model"`
	Year       int    `json:"year"`
	FilthScore *int   `json:"filthScore"`
}

func createCarHandler(carUC *usecase.CarUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCarRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}

		car := &model.Car{
			Make:       req.Make,
			Model:      req.Model,
			Year:       req.Year,
			FilthScore: req.FilthScore,
		}

		created, err := carUC.Create(r.Context(), car)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		writeJSON(w, r, http.StatusCreated, carResponse{Car: created, Links: carUC.Links(created)})
	}
}
