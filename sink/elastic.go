package sink

import (
	"context"
	"fmt"

	"github.com/olivere/elastic"
	"github.com/sirupsen/logrus"

	"github.com/warp/payroll-engine/payroll"
)

// DefaultIndex is the Elasticsearch index payment results land in.
const DefaultIndex = "payment-results"

const resultMappings = `{
"settings":{
  "number_of_shards":1,
  "number_of_replicas":0
},
"mappings":{
  "properties": {
    "employee_id": {
      "type": "keyword"
    },
    "pay": {
      "type": "double"
    },
    "date": {
      "type": "text"
    },
    "settlement_account": {
      "type": "keyword"
    },
    "currency": {
      "type": "keyword"
    },
    "base_pay": {
      "type": "double"
    },
    "overtime_pay": {
      "type": "double"
    },
    "deduction": {
      "type": "double"
    }
  }
}
}`

// resultDoc is the indexed document shape.
type resultDoc struct {
	EmployeeID        string  `json:"employee_id"`
	Pay               float64 `json:"pay"`
	Date              string  `json:"date"`
	SettlementAccount string  `json:"settlement_account"`
	Currency          string  `json:"currency"`
	BasePay           float64 `json:"base_pay"`
	OvertimePay       float64 `json:"overtime_pay"`
	Deduction         float64 `json:"deduction"`
}

// Elastic indexes payment results into Elasticsearch so they can be
// queried alongside other HR data.
type Elastic struct {
	Client *elastic.Client
	Index  string
	Log    logrus.FieldLogger
}

func NewElastic(client *elastic.Client, index string, log logrus.FieldLogger) *Elastic {
	if index == "" {
		index = DefaultIndex
	}
	return &Elastic{Client: client, Index: index, Log: log}
}

func (s *Elastic) Save(ctx context.Context, results []payroll.PaymentResult) error {
	exists, err := s.Client.IndexExists(s.Index).Do(ctx)
	if err != nil {
		return fmt.Errorf("check index %s: %w", s.Index, err)
	}
	if !exists {
		if _, err := s.Client.CreateIndex(s.Index).BodyString(resultMappings).Do(ctx); err != nil {
			return fmt.Errorf("create index %s: %w", s.Index, err)
		}
	}

	for _, r := range results {
		doc := resultDoc{
			EmployeeID:        string(r.EmployeeID),
			Pay:               r.Pay.InexactFloat64(),
			Date:              r.Date,
			SettlementAccount: r.SettlementAccount,
			Currency:          r.Currency,
			BasePay:           r.Breakdown.Base.InexactFloat64(),
			OvertimePay:       r.Breakdown.Overtime.InexactFloat64(),
			Deduction:         r.Breakdown.Deduction.InexactFloat64(),
		}

		_, err := s.Client.Index().Type("_doc").
			Index(s.Index).
			Id(fmt.Sprintf("%s-%s", r.EmployeeID, r.Date)).
			BodyJson(doc).
			Do(ctx)
		if err != nil {
			return fmt.Errorf("index result for %s: %w", r.EmployeeID, err)
		}
	}

	s.Log.WithFields(logrus.Fields{"index": s.Index, "results": len(results)}).
		Info("indexed results")
	return nil
}
