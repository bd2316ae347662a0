package util

import (
	"fmt"
	"strconv"
	"strings"
)

// QueryOperator is a comparison usable in a list query
type QueryOperator string

const (
	OpEq  QueryOperator = "eq"
	OpNe  QueryOperator = "ne"
	OpGt  QueryOperator = "gt"
	OpGte QueryOperator = "gte"
	OpLt  QueryOperator = "lt"
	OpLte QueryOperator = "lte"
	OpIn  QueryOperator = "in"
	OpNin QueryOperator = "nin"
)

var validOperators = map[string]QueryOperator{
	"eq":  OpEq,
	"ne":  OpNe,
	"gt":  OpGt,
	"gte": OpGte,
	"lt":  OpLt,
	"lte": OpLte,
	"in":  OpIn,
	"nin": OpNin,
}

// QueryFilter is a single filter condition. Value is a string, or a
// []string for in/nin.
type QueryFilter struct {
	Field    string
	Operator QueryOperator
	Value    interface{}
}

type OrderDirection string

const (
	OrderAsc  OrderDirection = "asc"
	OrderDesc OrderDirection = "desc"
)

type OrderClause struct {
	Field     string
	Direction OrderDirection
}

// ListFilter contains filtering/pagination options for list endpoints
type ListFilter struct {
	Filters []QueryFilter
	Order   []OrderClause
	Page    int
	PerPage int
}

// ListParams are the raw list parameters of a request.
type ListParams struct {
	Query   string
	Order   string
	Page    string
	PerPage string
}

// ParseListFilter turns raw parameters into a ListFilter, rejecting fields
// outside queryFields/orderFields. PerPage 0 means "everything".
func ParseListFilter(p ListParams, queryFields, orderFields []string) (ListFilter, error) {
	var lf ListFilter

	filters, err := ParseQueryString(p.Query)
	if err != nil {
		return lf, err
	}
	if err := validateFields(filterFields(filters), queryFields, "query"); err != nil {
		return lf, err
	}

	orders, err := ParseOrderString(p.Order)
	if err != nil {
		return lf, err
	}
	if err := validateFields(orderFieldNames(orders), orderFields, "order"); err != nil {
		return lf, err
	}

	lf.Filters = filters
	lf.Order = orders
	lf.Page = 1

	if p.Page != "" {
		page, err := strconv.Atoi(p.Page)
		if err != nil || page < 1 {
			return lf, fmt.Errorf("invalid page: %s", p.Page)
		}
		lf.Page = page
	}
	if p.PerPage != "" {
		perPage, err := strconv.Atoi(p.PerPage)
		if err != nil || perPage < 0 {
			return lf, fmt.Errorf("invalid per_page: %s", p.PerPage)
		}
		lf.PerPage = perPage
	}

	return lf, nil
}

// ParseQueryString parses comma-separated conditions of the form
// field|value (equality) or field|operator|value. For in/nin the value
// is a semicolon-separated list.
func ParseQueryString(queryStr string) ([]QueryFilter, error) {
	var filters []QueryFilter

	for _, pair := range strings.Split(queryStr, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		parts := strings.Split(pair, "|")
		switch len(parts) {
		case 2:
			filters = append(filters, QueryFilter{Field: parts[0], Operator: OpEq, Value: parts[1]})
		case 3:
			op, ok := validOperators[strings.ToLower(parts[1])]
			if !ok {
				return nil, fmt.Errorf("invalid operator: %s", parts[1])
			}
			var value interface{} = parts[2]
			if op == OpIn || op == OpNin {
				value = strings.Split(parts[2], ";")
			}
			filters = append(filters, QueryFilter{Field: parts[0], Operator: op, Value: value})
		default:
			return nil, fmt.Errorf("invalid query format: %s (expected field|value or field|operator|value)", pair)
		}
	}

	return filters, nil
}

// ParseOrderString parses comma-separated field|direction clauses.
func ParseOrderString(orderStr string) ([]OrderClause, error) {
	var orders []OrderClause

	for _, pair := range strings.Split(orderStr, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		field, direction, ok := strings.Cut(pair, "|")
		if !ok || strings.Contains(direction, "|") {
			return nil, fmt.Errorf("invalid order format: %s (expected field|direction)", pair)
		}

		direction = strings.ToLower(direction)
		if direction != string(OrderAsc) && direction != string(OrderDesc) {
			return nil, fmt.Errorf("invalid order direction: %s (expected asc or desc)", direction)
		}

		orders = append(orders, OrderClause{Field: field, Direction: OrderDirection(direction)})
	}

	return orders, nil
}

func filterFields(filters []QueryFilter) []string {
	fields := make([]string, len(filters))
	for i, f := range filters {
		fields[i] = f.Field
	}
	return fields
}

func orderFieldNames(orders []OrderClause) []string {
	fields := make([]string, len(orders))
	for i, o := range orders {
		fields[i] = o.Field
	}
	return fields
}

func validateFields(fields, allowedFields []string, kind string) error {
	allowed := make(map[string]bool, len(allowedFields))
	for _, f := range allowedFields {
		allowed[f] = true
	}

	for _, f := range fields {
		if !allowed[f] {
			return fmt.Errorf("invalid %s field: %s (valid fields: %s)", kind, f, strings.Join(allowedFields, ", "))
		}
	}
	return nil
}
