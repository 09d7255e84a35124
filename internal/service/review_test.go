package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bizreview/internal/events"
	eventMocks "bizreview/internal/events/mocks"
	"bizreview/internal/model"
	"bizreview/internal/repository"
	repoMocks "bizreview/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()
	in := model.Review{UserID: 3, BusinessID: 10, Stars: 4, ReviewText: "Great pastries"}

	tests := []struct {
		name       string
		input      model.Review
		setupMocks func(mRev *repoMocks.MockReviewRepository, mBiz *repoMocks.MockBusinessRepository, mPub *eventMocks.MockPublisher)
		wantErr    error
	}{
		{
			name:  "happy path",
			input: in,
			setupMocks: func(mRev *repoMocks.MockReviewRepository, mBiz *repoMocks.MockBusinessRepository, mPub *eventMocks.MockPublisher) {
				mBiz.On("FindByID", ctx, int64(10)).Return(&model.Business{ID: 10}, nil)
				mRev.On("FindByUserAndBusiness", ctx, int64(3), int64(10)).Return(nil, repository.ErrNotFound)
				created := in
				created.ID = 21
				mRev.On("Create", ctx, mock.Anything).Return(&created, nil)
				mPub.On("Publish", ctx, eventOfType(events.ReviewCreated)).Return(nil)
			},
		},
		{
			name:  "business missing",
			input: in,
			setupMocks: func(mRev *repoMocks.MockReviewRepository, mBiz *repoMocks.MockBusinessRepository, mPub *eventMocks.MockPublisher) {
				mBiz.On("FindByID", ctx, int64(10)).Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrBusinessNotFound,
		},
		{
			name:  "existing review",
			input: in,
			setupMocks: func(mRev *repoMocks.MockReviewRepository, mBiz *repoMocks.MockBusinessRepository, mPub *eventMocks.MockPublisher) {
				mBiz.On("FindByID", ctx, int64(10)).Return(&model.Business{ID: 10}, nil)
				mRev.On("FindByUserAndBusiness", ctx, int64(3), int64(10)).Return(&model.Review{ID: 1}, nil)
			},
			wantErr: ErrDuplicateReview,
		},
		{
			name:  "concurrent duplicate caught by unique key",
			input: in,
			setupMocks: func(mRev *repoMocks.MockReviewRepository, mBiz *repoMocks.MockBusinessRepository, mPub *eventMocks.MockPublisher) {
				mBiz.On("FindByID", ctx, int64(10)).Return(&model.Business{ID: 10}, nil)
				mRev.On("FindByUserAndBusiness", ctx, int64(3), int64(10)).Return(nil, repository.ErrNotFound)
				mRev.On("Create", ctx, mock.Anything).Return(nil, repository.ErrDuplicate)
			},
			wantErr: ErrDuplicateReview,
		},
		{
			name:  "business deleted before insert",
			input: in,
			setupMocks: func(mRev *repoMocks.MockReviewRepository, mBiz *repoMocks.MockBusinessRepository, mPub *eventMocks.MockPublisher) {
				mBiz.On("FindByID", ctx, int64(10)).Return(&model.Business{ID: 10}, nil)
				mRev.On("FindByUserAndBusiness", ctx, int64(3), int64(10)).Return(nil, repository.ErrNotFound)
				mRev.On("Create", ctx, mock.Anything).Return(nil, repository.ErrReferenceNotFound)
			},
			wantErr: ErrBusinessNotFound,
		},
		{
			name:       "user id beyond INT column",
			input:      model.Review{UserID: 3000000000, BusinessID: 10, Stars: 4},
			setupMocks: func(*repoMocks.MockReviewRepository, *repoMocks.MockBusinessRepository, *eventMocks.MockPublisher) {},
			wantErr:    ErrInvalidAttributes,
		},
		{
			name:       "business id beyond INT column",
			input:      model.Review{UserID: 3, BusinessID: 2147483648, Stars: 4},
			setupMocks: func(*repoMocks.MockReviewRepository, *repoMocks.MockBusinessRepository, *eventMocks.MockPublisher) {},
			wantErr:    ErrInvalidAttributes,
		},
		{
			name:       "stars out of range",
			input:      model.Review{UserID: 3, BusinessID: 10, Stars: 6},
			setupMocks: func(*repoMocks.MockReviewRepository, *repoMocks.MockBusinessRepository, *eventMocks.MockPublisher) {},
			wantErr:    ErrInvalidAttributes,
		},
		{
			name:       "text too long",
			input:      model.Review{UserID: 3, BusinessID: 10, Stars: 1, ReviewText: strings.Repeat("a", 1001)},
			setupMocks: func(*repoMocks.MockReviewRepository, *repoMocks.MockBusinessRepository, *eventMocks.MockPublisher) {},
			wantErr:    ErrInvalidAttributes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRev := new(repoMocks.MockReviewRepository)
			mBiz := new(repoMocks.MockBusinessRepository)
			mPub := new(eventMocks.MockPublisher)
			tt.setupMocks(mRev, mBiz, mPub)

			got, err := NewReviewService(mRev, mBiz, mPub).Create(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(21), got.ID)
			}
			mRev.AssertExpectations(t)
			mBiz.AssertExpectations(t)
			mPub.AssertExpectations(t)
		})
	}
}

func TestReviewService_Get(t *testing.T) {
	ctx := context.Background()
	mRev := new(repoMocks.MockReviewRepository)
	mRev.On("FindByID", ctx, int64(1)).Return(&model.Review{ID: 1, Stars: 5}, nil)
	mRev.On("FindByID", ctx, int64(2)).Return(nil, repository.ErrNotFound)
	mRev.On("FindByID", ctx, int64(3)).Return(nil, errors.New("conn refused"))
	s := NewReviewService(mRev, nil, nil)

	got, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stars)

	_, err = s.Get(ctx, 2)
	assert.ErrorIs(t, err, ErrReviewNotFound)

	_, err = s.Get(ctx, 3)
	assert.EqualError(t, err, "conn refused")
}

func TestReviewService_Update(t *testing.T) {
	ctx := context.Background()
	text := "Better on a second visit"

	t.Run("stars and text", func(t *testing.T) {
		mRev := new(repoMocks.MockReviewRepository)
		mPub := new(eventMocks.MockPublisher)
		mRev.On("Update", ctx, int64(8), 5, &text).Return(&model.Review{ID: 8, Stars: 5, ReviewText: text}, nil)
		mPub.On("Publish", ctx, eventOfType(events.ReviewUpdated)).Return(nil)

		got, err := NewReviewService(mRev, nil, mPub).Update(ctx, 8, 5, &text)

		require.NoError(t, err)
		assert.Equal(t, text, got.ReviewText)
		mPub.AssertExpectations(t)
	})

	t.Run("missing review", func(t *testing.T) {
		mRev := new(repoMocks.MockReviewRepository)
		mRev.On("Update", ctx, int64(9), 2, (*string)(nil)).Return(nil, repository.ErrNotFound)

		_, err := NewReviewService(mRev, nil, nil).Update(ctx, 9, 2, nil)

		assert.ErrorIs(t, err, ErrReviewNotFound)
	})

	t.Run("negative stars", func(t *testing.T) {
		mRev := new(repoMocks.MockReviewRepository)

		_, err := NewReviewService(mRev, nil, nil).Update(ctx, 9, -1, nil)

		assert.ErrorIs(t, err, ErrInvalidAttributes)
		mRev.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReviewService_Delete(t *testing.T) {
	ctx := context.Background()
	mRev := new(repoMocks.MockReviewRepository)
	mPub := new(eventMocks.MockPublisher)
	mRev.On("Delete", ctx, int64(1)).Return(nil)
	mRev.On("Delete", ctx, int64(2)).Return(repository.ErrNotFound)
	mPub.On("Publish", ctx, eventOfType(events.ReviewDeleted)).Return(nil).Once()
	s := NewReviewService(mRev, nil, mPub)

	assert.NoError(t, s.Delete(ctx, 1))
	assert.ErrorIs(t, s.Delete(ctx, 2), ErrReviewNotFound)
	mPub.AssertExpectations(t)
}

func TestReviewService_ListByUser(t *testing.T) {
	ctx := context.Background()
	mRev := new(repoMocks.MockReviewRepository)
	mRev.On("ListByUser", ctx, int64(3)).Return([]model.Review{{ID: 1}, {ID: 4}}, nil)
	mRev.On("ListByUser", ctx, int64(4)).Return([]model.Review{}, nil)
	s := NewReviewService(mRev, nil, nil)

	items, err := s.ListByUser(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = s.ListByUser(ctx, 4)
	assert.ErrorIs(t, err, ErrNoReviewsForUser)
}
