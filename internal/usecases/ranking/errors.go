package ranking

import "github.com/pkg/errors"

var ErrInvalidMonth = errors.New("mês inválido, use o formato mm-yyyy")
