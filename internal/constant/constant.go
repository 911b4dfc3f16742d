package constant

// Roles a workspace profile can hold. The matrix of what each role may touch
// lives in service.Account.
const (
	RoleAdmin        = "ADMIN"
	RoleVeterinarian = "VETERINARIO"
	RoleIntern       = "ESTAGIARIO"
)

const (
	// AccountAuthorizationRealm is the expected prefix of the Authorization
	// header, in the form of `Authorization: Account <token>`.
	AccountAuthorizationRealm = "Account "

	// ContextKeyAccount is the fiber.Ctx Locals key holding the resolved
	// *model.Profile of the caller.
	ContextKeyAccount = "account"

	// ContextKeyRequestID is the fiber.Ctx Locals key holding the request id.
	ContextKeyRequestID = "requestid"

	// RequestIDHeader carries the request id back to clients.
	RequestIDHeader = "X-Vetbase-Request-ID"
)

// Wire names of the tenant tables. These are also the keys under `tables` in
// a backup document and must stay stable across versions.
const (
	TableProfiles         = "profiles"
	TableTutors           = "tutores"
	TablePets             = "pets"
	TableAgenda           = "agenda"
	TableVisits           = "atendimentos"
	TableVaccines         = "vacinas"
	TableFinanceEntries   = "financeiro"
	TableInventoryItems   = "estoque_itens"
	TableVisitAttachments = "atendimento_attachments"
	TableAuditLog         = "audit_log"
)

const (
	// BackupDocumentVersion is the schema version stamped into meta.version of
	// every document this build produces, and the only version Restore accepts.
	BackupDocumentVersion = 1

	// BackupListLimit bounds the admin-facing backups listing.
	BackupListLimit = 20

	// BackupAuditCaptureLimit bounds how many audit_log rows a snapshot carries.
	BackupAuditCaptureLimit = 5000

	// RestoreChunkSize is the number of rows upserted per statement during a
	// restore, bounding statement size.
	RestoreChunkSize = 200
)

const (
	// AuditStreamName is the JetStream stream audit events are published to.
	AuditStreamName = "vetbase-audit"

	// AuditSubjectPrefix prefixes per-table audit subjects, e.g. AUDIT.tutores.
	AuditSubjectPrefix = "AUDIT."
)

// Audit actions recorded in audit_log.action.
const (
	AuditActionInsert     = "INSERT"
	AuditActionUpdate     = "UPDATE"
	AuditActionSoftDelete = "SOFT_DELETE"
	AuditActionDelete     = "DELETE"
)
