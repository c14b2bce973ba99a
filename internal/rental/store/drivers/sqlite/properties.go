package sqlite

import (
	"context"
	"database/sql"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
)

type propertiesRepo struct {
	q queryer
}

const propertyColumns = `id, landlord_id, address, city, state, zip_code, total_units,
	total_rent_amount, payment_frequency, electric_included, water_included,
	internet_included, gas_included, amenities, description, created_at, updated_at`

func scanProperty(row interface{ Scan(...any) error }) (domain.Property, error) {
	var p domain.Property
	err := row.Scan(
		&p.ID, &p.LandlordID, &p.Address, &p.City, &p.State, &p.ZipCode,
		&p.TotalUnits, &p.TotalRentAmount, &p.PaymentFrequency,
		&p.ElectricIncluded, &p.WaterIncluded, &p.InternetIncluded, &p.GasIncluded,
		&p.Amenities, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Property{}, err
	}
	return p, nil
}

func (r *propertiesRepo) GetPropertyByID(ctx context.Context, id string) (domain.Property, error) {
	p, err := scanProperty(r.q.QueryRowContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE id = ?`, id))
	if err != nil {
		return domain.Property{}, mapNotFound(err)
	}
	return p, nil
}

func (r *propertiesRepo) ListPropertiesByLandlord(ctx context.Context, landlordID string) ([]domain.Property, error) {
	// ULIDs sort by creation time, so id DESC is newest-first without
	// relying on the second-resolution timestamps.
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE landlord_id = ? ORDER BY id DESC`,
		landlordID)
	if err != nil {
		return nil, err
	}
	return collectProperties(rows)
}

func (r *propertiesRepo) CreateProperty(ctx context.Context, p domain.Property) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO properties (
			id, landlord_id, address, city, state, zip_code, total_units,
			total_rent_amount, payment_frequency, electric_included, water_included,
			internet_included, gas_included, amenities, description
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.LandlordID, p.Address, p.City, p.State, p.ZipCode, p.TotalUnits,
		p.TotalRentAmount, p.PaymentFrequency, p.ElectricIncluded, p.WaterIncluded,
		p.InternetIncluded, p.GasIncluded, p.Amenities, p.Description,
	)
	return err
}

func (r *propertiesRepo) UpdateProperty(ctx context.Context, p domain.Property) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE properties SET
			address = ?, city = ?, state = ?, zip_code = ?, total_units = ?,
			total_rent_amount = ?, payment_frequency = ?, electric_included = ?,
			water_included = ?, internet_included = ?, gas_included = ?,
			amenities = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		p.Address, p.City, p.State, p.ZipCode, p.TotalUnits,
		p.TotalRentAmount, p.PaymentFrequency, p.ElectricIncluded,
		p.WaterIncluded, p.InternetIncluded, p.GasIncluded,
		p.Amenities, p.Description, p.ID,
	)
	return ensureFound(res, err)
}

func (r *propertiesRepo) DeleteProperty(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id)
	return ensureFound(res, err)
}

func collectProperties(rows *sql.Rows) ([]domain.Property, error) {
	defer rows.Close()

	var out []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
