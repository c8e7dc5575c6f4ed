package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"stoik.com/emailregistry/internal/catalog"
	"stoik.com/emailregistry/internal/core/domain"
	"stoik.com/emailregistry/internal/core/service"
	"stoik.com/emailregistry/internal/storage"
	"stoik.com/emailregistry/mocks"
	"stoik.com/emailregistry/test"
)

func TestRegistration(t *testing.T) {
	suite.Run(t, new(RegistrationSuite))
}

type RegistrationSuite struct {
	suite.Suite
	dockerPool           *dockertest.Pool
	postgresCoreResource *dockertest.Resource
	postgresDB           *sql.DB
	pgxDB                *storage.PostgresDB
	storage              *storage.EmailsStorage
	notifier             *mocks.NotifierClient
	registrationService  *service.RegistrationService
	searchService        *service.SearchService
}

func (suite *RegistrationSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	if err != nil {
		suite.T().Fatalf("Could not connect to docker: %s", err)
	}
	suite.dockerPool = pool

	db, port, resource := test.SetupPostgresDB(suite.T(), pool)
	suite.postgresDB = db
	suite.postgresCoreResource = resource
	suite.pgxDB, suite.storage = test.NewEmailsStorage(suite.T(), port)
}

func (suite *RegistrationSuite) SetupTest() {
	test.ResetEmails(suite.T(), suite.postgresDB)

	suite.notifier = mocks.NewNotifierClient(suite.T())
	suite.notifier.On("NotifyEmailBatchRegistered", mock.Anything, mock.Anything).Return(nil).Maybe()

	suite.registrationService = service.NewRegistrationService(suite.storage, suite.notifier, catalog.Default(), nil, 5000)
	suite.searchService = service.NewSearchService(suite.storage, 100)

	if suite.T().Failed() {
		suite.T().FailNow()
	}
}

func (suite *RegistrationSuite) TearDownSuite() {
	if suite.pgxDB != nil {
		suite.pgxDB.Close()
	}
	if suite.postgresDB != nil {
		_ = suite.postgresDB.Close()
	}
	if suite.postgresCoreResource != nil {
		_ = suite.dockerPool.Purge(suite.postgresCoreResource)
	}
}

func record(i int, sender, smtpCode, body string) domain.EmailRecord {
	return domain.EmailRecord{
		ClientID:  "CLIENTE_1",
		Recipient: fmt.Sprintf("usuario%d@cliente_1.com", i),
		Sender:    sender,
		Timestamp: time.Now().UTC().Add(-time.Duration(i) * time.Minute),
		SMTPCode:  smtpCode,
		Body:      body,
	}
}

func (suite *RegistrationSuite) TestRegisterAndSearch() {
	ctx := context.Background()

	stored, err := suite.registrationService.RegisterBatch(ctx, []domain.EmailRecord{
		record(1, "x@empresa1.com", "SMTP-E1-1234-5678", "¡ALERTA! urgente. Cuerpo del correo 1."),
		record(2, "y@empresa3.com", "SMTP-E3-1234-5678", "Cuerpo del correo 2."),
	})
	suite.Require().NoError(err)
	suite.Require().Len(stored, 2)
	suite.Equal(domain.FraudLabelModerateRisk, stored[0].FraudLabel)
	suite.Equal(domain.FraudLabelSafe, stored[1].FraudLabel)

	found, err := suite.searchService.Search(ctx, domain.SearchFilter{ClientID: "CLIENTE_1", BodyContains: " URGENTE "})
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(stored[0].ID, found[0].ID)
}

func (suite *RegistrationSuite) TestDomainNotAllowed_PersistsNothing() {
	ctx := context.Background()

	_, err := suite.registrationService.RegisterBatch(ctx, []domain.EmailRecord{
		record(1, "x@empresa1.com", "SMTP-E1-1", "uno"),
		record(2, "x@empresa9.com", "SMTP-E1-2", "dos"),
	})

	var validationErr *domain.ValidationError
	suite.Require().True(errors.As(err, &validationErr))
	suite.Equal(domain.DomainNotAllowed, validationErr.Kind)
	suite.Equal(0, test.CountEmails(suite.T(), suite.postgresDB))
}

func (suite *RegistrationSuite) TestDuplicateSMTPCode_PersistsNothing() {
	ctx := context.Background()

	_, err := suite.registrationService.RegisterBatch(ctx, []domain.EmailRecord{
		record(1, "x@empresa1.com", "SMTP-E1-1", "uno"),
		record(2, "y@empresa1.com", "SMTP-E1-1", "dos"),
	})

	suite.ErrorIs(err, domain.ErrStorageConflict)
	suite.Equal(0, test.CountEmails(suite.T(), suite.postgresDB))
}
