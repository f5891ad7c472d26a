package httpapi

import (
	"net/http"

	"github.com/lookbusy1344/arm-emulator/riscv"
)

// handleDecode handles POST /api/v1/decode.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req DecodeRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Word == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}
	cfg, ok := isaConfig(req.ISA, req.ABI)
	if !ok {
		writeError(w, http.StatusBadRequest, "isa must be RV32I or RV64I")
		return
	}

	res, err := riscv.Instruction(req.Word, cfg)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toResponse(res))
}

// handleEncode handles POST /api/v1/encode.
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req EncodeRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Assembly == "" {
		writeError(w, http.StatusBadRequest, "assembly is required")
		return
	}
	cfg, ok := isaConfig(req.ISA, req.ABI)
	if !ok {
		writeError(w, http.StatusBadRequest, "isa must be RV32I or RV64I")
		return
	}

	res, err := riscv.Instruction(req.Assembly, cfg)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toResponse(res))
}
