package cmd

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/sound"
	"github.com/jsphweid/fretdex/triad"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the engine over HTTP",
	Long:  `Serves interval maps, triad voicings and strum plans as JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// HandleLabels serves the full interval-label map for a root note.
func HandleLabels(w http.ResponseWriter, r *http.Request) {
	var input model.LabelsRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
		return
	}
	root, err := pitch.Parse(input.Root)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	labels := fretboard.IntervalLabels(root)
	res := model.LabelsResponse{
		Root:  pitch.Name(root),
		Cells: make([]model.LabeledCell, 0, len(labels)),
	}
	for _, pos := range fretboard.AllPositions() {
		res.Cells = append(res.Cells, model.LabeledCell{Pos: pos, CellLabel: labels[pos]})
	}
	writeJSON(w, res)
}

func parseTriadBody(w http.ResponseWriter, r *http.Request) (model.FretPosition, model.TriadQuality, bool) {
	var input model.TriadRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
		return model.FretPosition{}, 0, false
	}
	if !fretboard.ValidPosition(input.String, input.Fret) {
		writeError(w, http.StatusBadRequest, "position off the board")
		return model.FretPosition{}, 0, false
	}
	q, err := triad.ParseQuality(input.Quality)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return model.FretPosition{}, 0, false
	}
	return model.FretPosition{String: input.String, Fret: input.Fret}, q, true
}

// HandleTriad serves the selected voicing for a root position and quality,
// 404 when no playable shape exists.
func HandleTriad(w http.ResponseWriter, r *http.Request) {
	pos, q, ok := parseTriadBody(w, r)
	if !ok {
		return
	}
	shape, found := triad.Shape(pos, q)
	if !found {
		writeError(w, http.StatusNotFound, "no playable shape at this position")
		return
	}
	writeJSON(w, shape)
}

// HandlePlan serves the strum plan for the selected voicing.
func HandlePlan(w http.ResponseWriter, r *http.Request) {
	pos, q, ok := parseTriadBody(w, r)
	if !ok {
		return
	}
	shape, found := triad.Shape(pos, q)
	if !found {
		writeError(w, http.StatusNotFound, "no playable shape at this position")
		return
	}
	writeJSON(w, model.PlanResponse{Events: sound.PlanFor(shape)})
}

// requestLogger tags each request with an id and logs it.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info("request",
			"id", uuid.New().String(),
			"method", r.Method,
			"path", r.URL.Path,
		)
		next.ServeHTTP(w, r)
	})
}

func serve() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/labels", HandleLabels).Methods("POST")
	router.HandleFunc("/triad", HandleTriad).Methods("POST")
	router.HandleFunc("/plan", HandlePlan).Methods("POST")

	handler := cors.Default().Handler(requestLogger(logger, router))

	addr := ":" + constants.GetPort()
	logger.Info("serving", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
