package services

import (
  "context"
  "encoding/json"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "github.com/yungbote/idea-incubator/internal/clients/gemini"
  "github.com/yungbote/idea-incubator/internal/logger"
  "github.com/yungbote/idea-incubator/internal/repos"
  "github.com/yungbote/idea-incubator/internal/types"
)

// CallObserver records the outcome of each model call for auditing. Recording
// is best-effort: a failed write never fails the request that triggered it.
type CallObserver interface {
  Record(ctx context.Context, entry CallRecord)
}

type CallRecord struct {
  UserID   *uuid.UUID
  IdeaID   *uuid.UUID
  CallType string
  Model    string
  Prompt   string
  Response string
  Success  bool
  Error    string
  Usage    *gemini.Usage
}

type dbCallObserver struct {
  callLogRepo repos.AICallLogRepo
  log         *logger.Logger
}

func NewDBCallObserver(callLogRepo repos.AICallLogRepo, baseLog *logger.Logger) CallObserver {
  return &dbCallObserver{
    callLogRepo: callLogRepo,
    log:         baseLog.With("service", "CallObserver"),
  }
}

func (o *dbCallObserver) Record(ctx context.Context, entry CallRecord) {
  row := &types.AICallLog{
    ID:       uuid.New(),
    UserID:   entry.UserID,
    IdeaID:   entry.IdeaID,
    CallType: entry.CallType,
    Model:    entry.Model,
    Prompt:   entry.Prompt,
    Response: entry.Response,
    Success:  entry.Success,
    Error:    entry.Error,
  }
  if entry.Usage != nil {
    if payload, err := json.Marshal(entry.Usage); err == nil {
      row.Usage = datatypes.JSON(payload)
    }
  }
  if _, err := o.callLogRepo.Create(ctx, nil, []*types.AICallLog{row}); err != nil {
    o.log.Warn("failed to persist ai call log", "call_type", entry.CallType, "error", err)
  }
}

type nopCallObserver struct{}

func NewNopCallObserver() CallObserver {
  return nopCallObserver{}
}

func (nopCallObserver) Record(ctx context.Context, entry CallRecord) {}
