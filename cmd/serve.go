package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/voicelead/constants"
	"github.com/jsphweid/voicelead/midi"
	"github.com/jsphweid/voicelead/model"
	"github.com/jsphweid/voicelead/progression"
	"github.com/jsphweid/voicelead/solver"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the voicing API",
	Long:  `Serves the voicing API over HTTP on VOICING_PORT`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

type MaterializeRequestBody struct {
	Chord    progression.Chord     `json:"chord"`
	Settings model.VoicingSettings `json:"settings"`
}

type StyleRequestBody struct {
	Chord    progression.Chord `json:"chord"`
	Style    *model.Style      `json:"style,omitempty"`
	Register bool              `json:"register,omitempty"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] could not encode response: %v", err)
	}
}

func decodeProgression(r *http.Request) (*progression.Progression, error) {
	var p progression.Progression
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("could not decode request body: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func HandleSolve(w http.ResponseWriter, r *http.Request) {
	requestId := uuid.New().String()
	p, err := decodeProgression(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	out := solveProgression(p)
	log.Printf("[INFO] solve %v: %v chords, %v comparisons, fallback=%v",
		requestId, len(out.specs), out.result.Comparisons, out.result.Fallback)

	writeJSON(w, model.SolveResponse{
		RequestId:   requestId,
		Settings:    out.result.Settings,
		Notes:       out.notes,
		Movement:    solver.Movement(out.notes),
		Fallback:    out.result.Fallback,
		Comparisons: out.result.Comparisons,
	})
}

func HandleMaterialize(w http.ResponseWriter, r *http.Request) {
	var body MaterializeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode request body: %w", err))
		return
	}
	p := progression.Progression{Chords: []progression.Chord{body.Chord}}
	if err := p.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, solver.Materialize(p.Specs()[0], body.Settings))
}

func HandleStyle(w http.ResponseWriter, r *http.Request) {
	var body StyleRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode request body: %w", err))
		return
	}
	styles := model.AllStyles()
	if body.Style != nil {
		styles = []model.Style{*body.Style}
	}
	res, err := styleVoicings(body.Chord, styles, body.Register)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, res)
}

func HandleStyles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, model.AllStyles())
}

func HandleExport(w http.ResponseWriter, r *http.Request) {
	p, err := decodeProgression(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	out := solveProgression(p)
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", uuid.New().String()+".mid"))
	if err := midi.WriteVoicings(w, out.notes, 120); err != nil {
		log.Printf("[ERROR] could not write midi: %v", err)
	}
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/solve", HandleSolve).Methods("POST")
	router.HandleFunc("/materialize", HandleMaterialize).Methods("POST")
	router.HandleFunc("/style", HandleStyle).Methods("POST")
	router.HandleFunc("/styles", HandleStyles).Methods("GET")
	router.HandleFunc("/export", HandleExport).Methods("POST")
	return cors.Default().Handler(router)
}

func serve() {
	addr := ":" + constants.GetPort()
	log.Printf("[INFO] listening on %v", addr)
	log.Fatal(http.ListenAndServe(addr, NewRouter()))
}
