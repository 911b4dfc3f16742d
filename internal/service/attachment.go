package service

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/guregu/null.v3"

	"github.com/vetbase/backend/internal/app/appconfig"
	"github.com/vetbase/backend/internal/constant"
	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/repo"
)

type Attachment struct {
	AttachmentRepo *repo.Attachment
	VisitRepo      *repo.Visit
	AuditService   *Audit
	S3Client       *s3.Client
	S3Bucket       string
}

func NewAttachment(attachmentRepo *repo.Attachment, visitRepo *repo.Visit, auditService *Audit, s3Client *s3.Client, conf *appconfig.Config) *Attachment {
	return &Attachment{
		AttachmentRepo: attachmentRepo,
		VisitRepo:      visitRepo,
		AuditService:   auditService,
		S3Client:       s3Client,
		S3Bucket:       conf.AttachmentsS3Bucket,
	}
}

func (s *Attachment) GetAttachmentsByVisitID(ctx context.Context, workspaceID, visitID string) ([]*model.VisitAttachment, error) {
	return s.AttachmentRepo.GetAttachmentsByVisitID(ctx, workspaceID, visitID)
}

// UploadAttachment stores the file bytes in object storage, then records the
// metadata row. An orphaned object from a failed insert is harmless and is
// not cleaned up here.
func (s *Attachment) UploadAttachment(ctx context.Context, actor *model.Profile, req *types.VisitAttachmentRequest, content []byte) (*model.VisitAttachment, error) {
	if _, err := s.VisitRepo.GetVisitByID(ctx, actor.WorkspaceID, req.VisitID); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	filePath := actor.WorkspaceID + "/" + req.VisitID + "/" + id + "-" + req.FileName

	_, err := s.S3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.S3Bucket),
		Key:         aws.String(filePath),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(req.MimeType),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store attachment object")
	}

	attachment := &model.VisitAttachment{
		ID:          id,
		WorkspaceID: actor.WorkspaceID,
		VisitID:     req.VisitID,
		FileName:    req.FileName,
		FilePath:    filePath,
		MimeType:    optString(req.MimeType),
		SizeBytes:   null.NewInt(int64(len(content)), true),
		AuditFields: stampCreate(actor, time.Now()),
	}
	if err := s.AttachmentRepo.CreateAttachment(ctx, attachment); err != nil {
		return nil, err
	}

	s.AuditService.RecordMutation(actor, constant.TableVisitAttachments, attachment.ID, constant.AuditActionInsert, nil, attachment)
	return attachment, nil
}

func (s *Attachment) DownloadAttachment(ctx context.Context, workspaceID, id string) (*model.VisitAttachment, []byte, error) {
	attachment, err := s.AttachmentRepo.GetAttachmentByID(ctx, workspaceID, id)
	if err != nil {
		return nil, nil, err
	}

	obj, err := s.S3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.S3Bucket),
		Key:    aws.String(attachment.FilePath),
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to fetch attachment object")
	}
	defer obj.Body.Close()

	content, err := io.ReadAll(obj.Body)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read attachment object")
	}
	return attachment, content, nil
}

// DeleteAttachment soft-deletes the metadata row. The object stays in the
// bucket so prior backups that reference file_path remain restorable.
func (s *Attachment) DeleteAttachment(ctx context.Context, actor *model.Profile, id string) error {
	attachment, err := s.AttachmentRepo.GetAttachmentByID(ctx, actor.WorkspaceID, id)
	if err != nil {
		return err
	}

	if err := s.AttachmentRepo.SoftDeleteAttachment(ctx, actor.WorkspaceID, id, deletionBy(actor, time.Now())); err != nil {
		return err
	}

	s.AuditService.RecordMutation(actor, constant.TableVisitAttachments, id, constant.AuditActionSoftDelete, attachment, nil)
	return nil
}
