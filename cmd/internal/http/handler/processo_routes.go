package handler

import (
	"net/http"
	"processos/cmd/internal/contract"
	"processos/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ProcessoService interface {
	ListProcessos(req *contract.ListProcessosQuery) (*contract.ListProcessosResponse, apierror.ErrorResponse)
	GetProcessoDetail(numero string) (*contract.ProcessoDetail, apierror.ErrorResponse)
}

type DefaultProcessoRoute struct {
	ProcessoService ProcessoService
}

func NewProcessoRoute(processoService ProcessoService) *DefaultProcessoRoute {
	return &DefaultProcessoRoute{ProcessoService: processoService}
}

func (p *DefaultProcessoRoute) ListProcessos(c echo.Context) error {
	req := contract.ListProcessosQuery{Limit: contract.DefaultPageLimit}
	if err := c.Bind(&req); err != nil {
		// Only non-string parameter
		apierr := apierror.NewInvalidParamTypeError("limit", "int")
		return c.JSON(apierr.Code(), apierr)
	}

	resp, apierr := p.ProcessoService.ListProcessos(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (p *DefaultProcessoRoute) GetProcesso(c echo.Context) error {
	// Used verbatim, the numero is never normalized
	numero := c.Param("numeroProcesso")

	detail, apierr := p.ProcessoService.GetProcessoDetail(numero)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, detail)
}
