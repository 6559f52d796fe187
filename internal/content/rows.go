package content

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type bowRow struct {
	Name   string `validate:"required"`
	MinDmg int    `validate:"gte=0"`
	MaxDmg int    `validate:"gtefield=MinDmg"`
}

type quiverRow struct {
	Name string `validate:"required"`
	Qty  int    `validate:"gte=0"`
}

type enemyRow struct {
	Name   string `validate:"required"`
	Health int    `validate:"gte=1"`
	Damage int    `validate:"gte=0"`
}

type provisionRow struct {
	Name      string `validate:"required"`
	FoodValue int    `validate:"gte=1"`
}

type sanctuaryRow struct {
	Name       string `validate:"required"`
	Bows       []string
	Quivers    []string
	Enemies    []string
	Provisions []string
}

// decoder pulls typed columns out of a Row, remembering the first failure.
type decoder struct {
	row Row
	err error
}

func (d *decoder) str(column string) string {
	return d.row.Get(column)
}

func (d *decoder) integer(column string) int {
	raw := d.row.Get(column)
	n, err := strconv.Atoi(raw)
	if err != nil && d.err == nil {
		d.err = fmt.Errorf("column %s: %q is not an integer", column, raw)
	}
	return n
}

func (d *decoder) list(column string) []string {
	return SplitList(d.row.Get(column))
}

func decodeBow(r Row) (bowRow, error) {
	d := &decoder{row: r}
	b := bowRow{Name: d.str("Name"), MinDmg: d.integer("MinDmg"), MaxDmg: d.integer("MaxDmg")}
	return b, d.err
}

func decodeQuiver(r Row) (quiverRow, error) {
	d := &decoder{row: r}
	q := quiverRow{Name: d.str("Name"), Qty: d.integer("Qty")}
	return q, d.err
}

func decodeEnemy(r Row) (enemyRow, error) {
	d := &decoder{row: r}
	e := enemyRow{Name: d.str("Name"), Health: d.integer("Health"), Damage: d.integer("Damage")}
	return e, d.err
}

func decodeProvision(r Row) (provisionRow, error) {
	d := &decoder{row: r}
	p := provisionRow{Name: d.str("Name"), FoodValue: d.integer("FoodValue")}
	return p, d.err
}

func decodeSanctuary(r Row) (sanctuaryRow, error) {
	d := &decoder{row: r}
	s := sanctuaryRow{
		Name:       d.str("Name"),
		Bows:       d.list("Bows"),
		Quivers:    d.list("Quivers"),
		Enemies:    d.list("Enemies"),
		Provisions: d.list("Provisions"),
	}
	return s, d.err
}

// describeValidation flattens validator errors into "Field tag" pairs.
func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		if e.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", e.Field(), e.Tag(), e.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s is %s", e.Field(), e.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
