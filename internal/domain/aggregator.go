package domain

import (
	"cmp"
	"slices"
)

// StatusCount soma vendas entregues e pendentes
type StatusCount struct {
	Delivered int `json:"delivered"`
	Pending   int `json:"pending"`
}

func (c StatusCount) Total() int {
	return c.Delivered + c.Pending
}

func (c StatusCount) add(delivered bool) StatusCount {
	if delivered {
		c.Delivered++
	} else {
		c.Pending++
	}
	return c
}

func (c StatusCount) plus(others ...StatusCount) StatusCount {
	for _, o := range others {
		c.Delivered += o.Delivered
		c.Pending += o.Pending
	}
	return c
}

// AdvisorStats é o resumo de vendas de um vendedor
type AdvisorStats struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Delivered int    `json:"delivered"`
	Pending   int    `json:"pending"`
	Total     int    `json:"total"`
	Sales     []Sale `json:"sales,omitempty"`
}

// AggregateByAdvisor agrupa as vendas por vendedor (comparação exata do nome)
// e ordena pelo critério base, aplicando os modificadores informados.
func AggregateByAdvisor(sales []Sale, modifiers ...RankingModifier) []AdvisorStats {
	index := make(map[string]int)
	stats := make([]AdvisorStats, 0)

	for _, sale := range sales {
		i, exists := index[sale.Advisor]
		if !exists {
			i = len(stats)
			index[sale.Advisor] = i
			stats = append(stats, AdvisorStats{
				Name:      sale.Advisor,
				ShortName: ShortAdvisorName(sale.Advisor),
			})
		}

		if Classify(sale).Delivered {
			stats[i].Delivered++
		} else {
			stats[i].Pending++
		}
		stats[i].Total++
		stats[i].Sales = append(stats[i].Sales, sale)
	}

	for i := range stats {
		slices.SortStableFunc(stats[i].Sales, compareChips)
	}

	SortAdvisorStats(stats, modifiers...)

	return stats
}

// SortAdvisorStats ordena o slice in-place (ordenação estável)
func SortAdvisorStats(stats []AdvisorStats, modifiers ...RankingModifier) {
	compare := BuildAdvisorComparator(modifiers...)
	slices.SortStableFunc(stats, compare)
}

// compareChips ordena as vendas do vendedor: entregues primeiro, depois pela data
// de entrega mais antiga. Datas inválidas ficam no fim do seu grupo.
func compareChips(a, b Sale) int {
	aDelivered, bDelivered := Classify(a).Delivered, Classify(b).Delivered
	if aDelivered != bDelivered {
		if aDelivered {
			return -1
		}
		return 1
	}

	switch {
	case !a.DeliveryDate.Valid && !b.DeliveryDate.Valid:
		return 0
	case !a.DeliveryDate.Valid:
		return 1
	case !b.DeliveryDate.Valid:
		return -1
	}
	return a.DeliveryDate.Time.Compare(b.DeliveryDate.Time)
}

// AdvisorComparator compara dois vendedores no estilo cmp.Compare
type AdvisorComparator func(a, b AdvisorStats) int

// CompareAdvisors é a ordenação base: entregues desc, total desc, nome asc
func CompareAdvisors(a, b AdvisorStats) int {
	if c := cmp.Compare(b.Delivered, a.Delivered); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Total, a.Total); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

// RankingModifier envolve um comparador com uma regra de apresentação
type RankingModifier func(next AdvisorComparator) AdvisorComparator

// BuildAdvisorComparator monta o comparador final.
// Modificadores informados primeiro têm precedência sobre os seguintes.
func BuildAdvisorComparator(modifiers ...RankingModifier) AdvisorComparator {
	compare := AdvisorComparator(CompareAdvisors)
	for i := len(modifiers) - 1; i >= 0; i-- {
		if modifiers[i] != nil {
			compare = modifiers[i](compare)
		}
	}
	return compare
}

// WithComparator substitui o comparador recebido, permitindo trocar a ordenação base
func WithComparator(base AdvisorComparator) RankingModifier {
	return func(AdvisorComparator) AdvisorComparator {
		return base
	}
}

// CurrentUserFirst coloca o usuário da sessão no topo independente da contagem
func CurrentUserFirst(session Session) RankingModifier {
	return pinAdvisor(session.UserName, -1)
}

// HouseLast coloca o vendedor sentinela "House" no final
func HouseLast() RankingModifier {
	return pinAdvisor(HouseAdvisor, 1)
}

func pinAdvisor(name string, direction int) RankingModifier {
	return func(next AdvisorComparator) AdvisorComparator {
		if name == "" {
			return next
		}
		return func(a, b AdvisorStats) int {
			aPinned, bPinned := a.Name == name, b.Name == name
			switch {
			case aPinned && !bPinned:
				return direction
			case bPinned && !aPinned:
				return -direction
			}
			return next(a, b)
		}
	}
}

// TypeStats traz entregues/pendentes por bucket e os agregados por marca
type TypeStats struct {
	NewBMW    StatusCount `json:"new_bmw"`
	CPOBMW    StatusCount `json:"cpo_bmw"`
	UsedBMW   StatusCount `json:"used_bmw"`
	NewMINI   StatusCount `json:"new_mini"`
	CPOMINI   StatusCount `json:"cpo_mini"`
	UsedMINI  StatusCount `json:"used_mini"`
	TotalBMW  StatusCount `json:"total_bmw"`
	TotalMINI StatusCount `json:"total_mini"`
	TotalUsed StatusCount `json:"total_used"`
}

// AggregateByType soma as vendas por bucket; vendas Unclassified ficam de fora
func AggregateByType(sales []Sale) TypeStats {
	var stats TypeStats

	for _, sale := range sales {
		c := Classify(sale)
		bucket := stats.bucketRef(c.Bucket)
		if bucket == nil {
			continue
		}
		*bucket = bucket.add(c.Delivered)
	}

	stats.TotalBMW = StatusCount{}.plus(stats.NewBMW, stats.CPOBMW, stats.UsedBMW)
	stats.TotalMINI = StatusCount{}.plus(stats.NewMINI, stats.CPOMINI, stats.UsedMINI)
	stats.TotalUsed = StatusCount{}.plus(stats.CPOBMW, stats.UsedBMW, stats.CPOMINI, stats.UsedMINI)

	return stats
}

func (t *TypeStats) bucketRef(b TypeBucket) *StatusCount {
	switch b {
	case BucketNewBMW:
		return &t.NewBMW
	case BucketCPOBMW:
		return &t.CPOBMW
	case BucketUsedBMW:
		return &t.UsedBMW
	case BucketNewMINI:
		return &t.NewMINI
	case BucketCPOMINI:
		return &t.CPOMINI
	case BucketUsedMINI:
		return &t.UsedMINI
	}
	return nil
}

// Bucket retorna a contagem de um bucket; Unclassified sempre retorna zero
func (t TypeStats) Bucket(b TypeBucket) StatusCount {
	if ref := t.bucketRef(b); ref != nil {
		return *ref
	}
	return StatusCount{}
}

// ClassifiedTotal soma entregues e pendentes dos seis buckets
func (t TypeStats) ClassifiedTotal() int {
	total := 0
	for _, b := range ClassifiedBuckets {
		total += t.Bucket(b).Total()
	}
	return total
}
