package reporting

import "github.com/pkg/errors"

var (
	ErrInvalidPeriod      = errors.New("período inválido")
	ErrRestaurantNotFound = errors.New("restaurante não encontrado")
)
