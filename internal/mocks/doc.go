// Package mocks provides shared test doubles.
//
// Service mocks (MockUserService, MockCardSetService, MockCardService,
// MockLearningService, MockJWTService) use function fields with default
// return values and are meant for handler tests:
//
//	svc := &mocks.MockLearningService{
//	    SubmitAnswerFn: func(ctx context.Context, userID, questionID int64, answer string) (*domain.Question, error) {
//	        return nil, learning.ErrQuestionClosed
//	    },
//	}
//
// Store mocks (TestifyMock*Store) are testify/mock based and are meant for
// service tests, together with NewTxDB which supplies real transactions.
package mocks
