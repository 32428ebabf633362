package submission

import (
	"context"
	"log/slog"

	"github.com/GMRZ11/avaliacao-imobiliaria/internal/errors"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/sqlite"
)

// Repository stores completed submissions as a local audit log next to the
// outbound forwarding.
type Repository struct {
	dbs    *sqlite.Database
	logger *slog.Logger
}

func NewRepository(dbs *sqlite.Database, logger *slog.Logger) *Repository {
	return &Repository{
		dbs:    dbs,
		logger: logger.With("source", "SubmissionRepository"),
	}
}

func (r *Repository) Insert(ctx context.Context, s Submission) error {
	stmt := `INSERT INTO submissions (
    id,
    distrito,
    concelho,
    freguesia,
    morada,
    tipo,
    area_util,
    area_total,
    piso,
    tipologia,
    ano_construcao,
    estado,
    certificado_energetico,
    elevador,
    varanda,
    garagem,
    piscina,
    jardim,
    telemovel,
    rgpd,
    contacto,
    avaliacao,
    created_at
) VALUES (
    :id,
    :distrito,
    :concelho,
    :freguesia,
    :morada,
    :tipo,
    :area_util,
    :area_total,
    :piso,
    :tipologia,
    :ano_construcao,
    :estado,
    :certificado_energetico,
    :elevador,
    :varanda,
    :garagem,
    :piscina,
    :jardim,
    :telemovel,
    :rgpd,
    :contacto,
    :avaliacao,
    :created_at
)`
	if _, err := r.dbs.ReadWrite.NamedExecContext(ctx, stmt, s); err != nil {
		return errors.Wrap(err, "insert submission", slog.String("id", s.ID))
	}
	return nil
}

// Latest returns the n most recent submissions, newest first.
func (r *Repository) Latest(ctx context.Context, n int) ([]Submission, error) {
	var submissions []Submission
	stmt := `SELECT
    id,
    distrito,
    concelho,
    freguesia,
    morada,
    tipo,
    area_util,
    area_total,
    piso,
    tipologia,
    ano_construcao,
    estado,
    certificado_energetico,
    elevador,
    varanda,
    garagem,
    piscina,
    jardim,
    telemovel,
    rgpd,
    contacto,
    avaliacao,
    created_at
FROM submissions
ORDER BY created_at DESC, id
LIMIT ?`
	if err := r.dbs.ReadOnly.SelectContext(ctx, &submissions, stmt, n); err != nil {
		return nil, errors.Wrap(err, "select submissions")
	}
	return submissions, nil
}
