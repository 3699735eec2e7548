package service

import (
	"context"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"immodok/internal/domain"
	"immodok/internal/extract"
	"immodok/internal/filename"
	"immodok/internal/match"
	"immodok/internal/port"
)

// textLayerMinChars is the trimmed text length above which a document
// is assumed to already carry a machine-readable text layer.
const textLayerMinChars = 200

// minDocumentBytes is the smallest payload accepted as a document.
const minDocumentBytes = 10

// ProcessInput is the DTO for document processing requests.
type ProcessInput struct {
	Filename string
	Data     []byte
	// FileID overrides the generated storage identifier. Used for
	// deterministic tests; leave empty in production.
	FileID string
}

// ProcessService defines the document processing contract.
type ProcessService interface {
	Process(ctx context.Context, input ProcessInput) (*domain.ResultRecord, error)
}

type processService struct {
	extractor port.TextExtractor
	store     port.DocumentStore
	objects   port.ObjectSource
	vendors   port.VendorSource
	fields    *extract.FieldExtractor
	matcher   *match.Matcher
	now       func() time.Time
	newID     func() string
}

// NewProcessService creates a ProcessService implementation. The
// registry and vendor sources are re-read on every call so that edits
// to the backing files take effect without a restart; requests share
// no mutable state and may run in parallel.
func NewProcessService(
	extractor port.TextExtractor,
	store port.DocumentStore,
	objects port.ObjectSource,
	vendors port.VendorSource,
	fields *extract.FieldExtractor,
	matcher *match.Matcher,
) ProcessService {
	return &processService{
		extractor: extractor,
		store:     store,
		objects:   objects,
		vendors:   vendors,
		fields:    fields,
		matcher:   matcher,
		now:       time.Now,
		newID: func() string {
			return strings.ReplaceAll(uuid.New().String(), "-", "")
		},
	}
}

func (s *processService) Process(ctx context.Context, input ProcessInput) (*domain.ResultRecord, error) {
	if len(input.Data) < minDocumentBytes {
		return nil, domain.ErrEmptyDocument
	}

	extraction, err := s.extractor.Extract(ctx, input.Data)
	if err != nil {
		return nil, err
	}
	textLen := utf8.RuneCountInString(strings.TrimSpace(extraction.Text))

	// Configuration load failures degrade to empty data rather than
	// failing the request; the warning is the only trace, so log it.
	vendorAliases, err := s.vendors.LoadVendorAliases(ctx)
	if err != nil {
		log.Printf("processService.Process: vendor map unavailable, using empty table: %v", err)
		vendorAliases = nil
	}

	bundle := s.fields.Extract(extraction.Text, vendorAliases)

	objects, err := s.objects.LoadObjects(ctx)
	if err != nil {
		log.Printf("processService.Process: object registry unavailable, using empty registry: %v", err)
		objects = nil
	}

	var buildingMatch domain.BuildingMatch
	if bundle.BuildingCandidate != nil {
		buildingMatch = s.matcher.Match(*bundle.BuildingCandidate, objects)
	}

	suggested := filename.Build(filename.Parts{
		ObjectNumber: buildingMatch.ObjectNumber,
		Date:         bundle.Date,
		DocType:      bundle.DocType,
		Vendor:       bundle.Vendor,
		Amount:       bundle.Amount,
	})

	fileID := input.FileID
	if fileID == "" {
		fileID = s.newID()
	}
	if err := s.store.Save(ctx, fileID, input.Data); err != nil {
		log.Printf("processService.Process: storing document %s failed: %v", fileID, err)
		return nil, domain.ErrStorageFailed
	}

	var amount *float64
	if bundle.Amount != nil {
		v, _ := bundle.Amount.Float64()
		amount = &v
	}

	return &domain.ResultRecord{
		FileID:            fileID,
		DocType:           bundle.DocType,
		Vendor:            bundle.Vendor,
		Amount:            amount,
		Currency:          bundle.Currency,
		Date:              bundle.Date,
		BuildingMatch:     buildingMatch,
		SuggestedFilename: suggested,
		Confidence:        bundle.Confidence,
		Debug: domain.DebugInfo{
			TextLayer:   textLen > textLayerMinChars,
			TextLength:  textLen,
			PageCount:   extraction.PageCount,
			ProcessedAt: s.now().UTC().Format(time.RFC3339),
		},
	}, nil
}
