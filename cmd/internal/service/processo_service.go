package service

import (
	"processos/cmd/internal/contract"
	"processos/cmd/internal/domain/entity"
	"processos/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ProcessoRepository interface {
	FindAll() []*entity.Processo
	FindByNumeroProcesso(numero string) *entity.Processo
}

type DefaultProcessoService struct {
	ProcessoRepo ProcessoRepository
	Validate     *validator.Validate
}

func NewProcessoService(processoRepo ProcessoRepository, validate *validator.Validate) *DefaultProcessoService {
	return &DefaultProcessoService{
		ProcessoRepo: processoRepo,
		Validate:     validate,
	}
}

// ListProcessos applies the filters in order (eligibility, q, tribunal, grau)
// over the store and returns one page of summaries.
func (s *DefaultProcessoService) ListProcessos(req *contract.ListProcessosQuery) (*contract.ListProcessosResponse, apierror.ErrorResponse) {
	if valerr := s.Validate.Struct(req); valerr != nil {
		if apierr := apierror.FromValidationError(valerr); apierr != nil {
			return nil, apierr
		}
		log.Errorf("failed to validate list query: %v", valerr)
		return nil, apierror.InternalServerError
	}

	filtered := filterProcessos(s.ProcessoRepo.FindAll(), newProcessoFilter(req))
	page := paginate(filtered, req.Cursor, req.Limit)

	items := make([]*contract.ProcessoSummary, 0, len(page.items))
	for _, r := range page.items {
		// Processos resolved but not displayable yet are dropped from the page.
		if summary := toSummary(r); summary != nil {
			items = append(items, summary)
		}
	}

	return &contract.ListProcessosResponse{
		Items:      items,
		NextCursor: page.nextCursor,
	}, nil
}

// GetProcessoDetail differs from the listing on purpose: a processo that exists
// but cannot be displayed is reported as invalid instead of being hidden.
func (s *DefaultProcessoService) GetProcessoDetail(numero string) (*contract.ProcessoDetail, apierror.ErrorResponse) {
	processo := s.ProcessoRepo.FindByNumeroProcesso(numero)
	if processo == nil {
		return nil, apierror.NewProcessoNotFoundError(numero)
	}

	detail := toProcessoDetail(processo)
	if detail == nil {
		return nil, apierror.NewProcessoInvalidError(numero)
	}
	return detail, nil
}
