package storage

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"

	"stoik.com/emailregistry/internal/core/domain"
	"stoik.com/emailregistry/internal/storage"
	"stoik.com/emailregistry/test"
)

func TestEmailsStorage(t *testing.T) {
	suite.Run(t, new(EmailsStorageSuite))
}

type EmailsStorageSuite struct {
	suite.Suite
	dockerPool       *dockertest.Pool
	postgresResource *dockertest.Resource
	postgresDB       *sql.DB
	pgxDB            *storage.PostgresDB
	storage          *storage.EmailsStorage
}

func (suite *EmailsStorageSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	if err != nil {
		suite.T().Fatalf("Could not connect to docker: %s", err)
	}
	suite.dockerPool = pool

	db, port, resource := test.SetupPostgresDB(suite.T(), pool)
	suite.postgresDB = db
	suite.postgresResource = resource
	suite.pgxDB, suite.storage = test.NewEmailsStorage(suite.T(), port)
}

func (suite *EmailsStorageSuite) SetupTest() {
	test.ResetEmails(suite.T(), suite.postgresDB)

	if suite.T().Failed() {
		suite.T().FailNow()
	}
}

func (suite *EmailsStorageSuite) TearDownSuite() {
	if suite.pgxDB != nil {
		suite.pgxDB.Close()
	}
	if suite.postgresDB != nil {
		_ = suite.postgresDB.Close()
	}
	if suite.dockerPool != nil && suite.postgresResource != nil {
		_ = suite.dockerPool.Purge(suite.postgresResource)
	}
}

func email(clientID, sender, smtpCode, body string) domain.EmailRecord {
	return domain.EmailRecord{
		ClientID:   clientID,
		Recipient:  "usuario@cliente.com",
		Sender:     sender,
		Timestamp:  time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		SMTPCode:   smtpCode,
		Body:       body,
		FraudLabel: domain.FraudLabelSafe,
	}
}

func (suite *EmailsStorageSuite) TestStoreBatch_AssignsIDsInOrder() {
	ctx := context.Background()

	stored, err := suite.storage.StoreBatch(ctx, []domain.EmailRecord{
		email("CLIENTE_1", "a@empresa1.com", "SMTP-E1-1", "uno"),
		email("CLIENTE_1", "b@empresa1.com", "SMTP-E1-2", "dos"),
	})

	suite.Require().NoError(err)
	suite.Require().Len(stored, 2)
	suite.Equal(int64(1), stored[0].ID)
	suite.Equal(int64(2), stored[1].ID)
	suite.Equal("SMTP-E1-2", stored[1].SMTPCode)

	loaded, err := suite.storage.GetEmailsByIDs(ctx, []int64{stored[1].ID})
	suite.Require().NoError(err)
	suite.Require().Len(loaded, 1)
	suite.Equal("dos", loaded[0].Body)
	suite.True(loaded[0].Timestamp.Equal(stored[1].Timestamp))
	suite.Equal(domain.FraudLabelSafe, loaded[0].FraudLabel)
}

func (suite *EmailsStorageSuite) TestStoreBatch_DuplicateInBatchRollsBack() {
	ctx := context.Background()

	_, err := suite.storage.StoreBatch(ctx, []domain.EmailRecord{
		email("CLIENTE_1", "a@empresa1.com", "SMTP-E1-1", "uno"),
		email("CLIENTE_1", "b@empresa1.com", "SMTP-E1-1", "dos"),
	})

	suite.ErrorIs(err, domain.ErrStorageConflict)
	suite.Equal(0, test.CountEmails(suite.T(), suite.postgresDB))
}

func (suite *EmailsStorageSuite) TestStoreBatch_ResubmitFails() {
	ctx := context.Background()
	batch := []domain.EmailRecord{
		email("CLIENTE_1", "a@empresa1.com", "SMTP-E1-1", "uno"),
		email("CLIENTE_1", "b@empresa1.com", "SMTP-E1-2", "dos"),
	}

	_, err := suite.storage.StoreBatch(ctx, batch)
	suite.Require().NoError(err)

	_, err = suite.storage.StoreBatch(ctx, batch)
	suite.ErrorIs(err, domain.ErrStorageConflict)

	suite.Equal(2, test.CountEmails(suite.T(), suite.postgresDB))
	var body string
	err = suite.postgresDB.QueryRow("SELECT body FROM emails WHERE smtp_code = $1", "SMTP-E1-1").Scan(&body)
	suite.NoError(err)
	suite.Equal("uno", body)
}

func (suite *EmailsStorageSuite) TestSearch_Pagination() {
	ctx := context.Background()

	batch := make([]domain.EmailRecord, 0, 20)
	for i := 0; i < 15; i++ {
		batch = append(batch, email("CLIENTE_1", "a@empresa1.com", fmt.Sprintf("SMTP-E1-%d", i), "cuerpo"))
	}
	for i := 0; i < 5; i++ {
		batch = append(batch, email("CLIENTE_2", "a@compania1.com", fmt.Sprintf("SMTP-C1-%d", i), "cuerpo"))
	}
	_, err := suite.storage.StoreBatch(ctx, batch)
	suite.Require().NoError(err)

	first, err := suite.storage.Search(ctx, domain.SearchFilter{ClientID: "CLIENTE_1", Page: 1, PageSize: 10})
	suite.Require().NoError(err)
	second, err := suite.storage.Search(ctx, domain.SearchFilter{ClientID: "CLIENTE_1", Page: 2, PageSize: 10})
	suite.Require().NoError(err)
	third, err := suite.storage.Search(ctx, domain.SearchFilter{ClientID: "CLIENTE_1", Page: 3, PageSize: 10})
	suite.Require().NoError(err)

	suite.Len(first, 10)
	suite.Len(second, 5)
	suite.Empty(third)
	suite.NotNil(third)

	seen := make(map[int64]bool)
	for _, e := range append(first, second...) {
		suite.False(seen[e.ID], "id %d returned twice", e.ID)
		seen[e.ID] = true
		suite.Equal("CLIENTE_1", e.ClientID)
	}
	suite.Less(first[9].ID, second[0].ID)
}

func (suite *EmailsStorageSuite) TestSearch_Filters() {
	ctx := context.Background()

	_, err := suite.storage.StoreBatch(ctx, []domain.EmailRecord{
		email("CLIENTE_1", "a@empresa1.com", "SMTP-E1-1", "¡ALERTA! URGENTE. Cuerpo del correo 1."),
		email("CLIENTE_1", "b@empresa2.com", "SMTP-E2-1", "Cuerpo del correo 2, urgente"),
		email("CLIENTE_1", "a@empresa1.com", "SMTP-E1-2", "Cuerpo del correo 3."),
		email("CLIENTE_1", "a@empresa1.com", "SMTP-E1-3", "descuento 50% hoy"),
	})
	suite.Require().NoError(err)

	byBody, err := suite.storage.Search(ctx, domain.SearchFilter{ClientID: "CLIENTE_1", BodyContains: "Urgente", Page: 1, PageSize: 10})
	suite.Require().NoError(err)
	suite.Len(byBody, 2)

	byBoth, err := suite.storage.Search(ctx, domain.SearchFilter{ClientID: "CLIENTE_1", BodyContains: "urgente", Sender: "a@empresa1.com", Page: 1, PageSize: 10})
	suite.Require().NoError(err)
	suite.Require().Len(byBoth, 1)
	suite.Equal("SMTP-E1-1", byBoth[0].SMTPCode)

	percent, err := suite.storage.Search(ctx, domain.SearchFilter{ClientID: "CLIENTE_1", BodyContains: "50%", Page: 1, PageSize: 10})
	suite.Require().NoError(err)
	suite.Len(percent, 1)

	otherClient, err := suite.storage.Search(ctx, domain.SearchFilter{ClientID: "cliente_1", Page: 1, PageSize: 10})
	suite.Require().NoError(err)
	suite.Empty(otherClient)
}
