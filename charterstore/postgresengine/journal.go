package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/charterstore/postgresengine/internal/adapters"
)

const (
	defaultJournalTableName  = "charter_journal"
	defaultSnapshotTableName = "charter_snapshots"

	logMsgBuildSelectQueryFailed = "failed to build select query"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgScanRowFailed          = "failed to scan database row"
	logMsgBuildRecordFailed      = "failed to build record from database row"
	logMsgBuildInsertQueryFailed = "failed to build insert query"
	logMsgDBExecFailed           = "database execution failed during record append"
	logMsgRowsAffectedFailed     = "failed to get rows affected count"
	logMsgSingleRecordSQLFailed  = "failed to convert single record insert statement to SQL"
	logMsgMultiRecordSQLFailed   = "failed to convert multiple records insert statement to SQL"
	logMsgQueryCompleted         = "query completed"
	logMsgRecordsAppended        = "records appended"
	logMsgSequenceConflict       = "sequence conflict detected"
	logMsgSnapshotSaveFailed     = "failed to save snapshot"
	logMsgSnapshotLoadFailed     = "failed to load snapshot"
	logMsgSnapshotDeleteFailed   = "failed to delete snapshot"
	logMsgSQLExecuted            = "executed sql for: "
	logMsgOperation              = "journal operation: "

	logAttrError            = "error"
	logAttrQuery            = "query"
	logAttrEventType        = "event_type"
	logAttrRecordCount      = "record_count"
	logAttrDurationMS       = "duration_ms"
	logAttrExpectedRecords  = "expected_records"
	logAttrRowsAffected     = "rows_affected"
	logAttrExpectedSequence = "expected_sequence"
	logAttrProjectionType   = "projection_type"

	logActionQuery          = "query"
	logActionAppend         = "append"
	logActionSaveSnapshot   = "save_snapshot"
	logActionLoadSnapshot   = "load_snapshot"
	logActionDeleteSnapshot = "delete_snapshot"

	colEventType      = "event_type"
	colOccurredAt     = "occurred_at"
	colPayload        = "payload"
	colMetadata       = "metadata"
	colSequenceNumber = "sequence_number"
	colProjectionType = "projection_type"
	colScopeHash      = "scope_hash"
	colData           = "data"
	colCreatedAt      = "created_at"

	cteContext      = "context"
	cteVals         = "vals"
	dialectPostgres = "postgres"
	aliasMaxSeq     = "max_seq"
	castText        = "?::text"
	castTimestamp   = "?::timestamp with time zone"
	castJsonb       = "?::jsonb"

	snapshotConflictTarget = "projection_type, scope_hash"

	metricQueryDuration         = "charterjournal_query_duration_seconds"
	metricAppendDuration        = "charterjournal_append_duration_seconds"
	metricSequenceConflictTotal = "charterjournal_sequence_conflict_total"

	spanQuery          = "charterjournal.query"
	spanAppend         = "charterjournal.append"
	spanSaveSnapshot   = "charterjournal.save_snapshot"
	spanLoadSnapshot   = "charterjournal.load_snapshot"
	spanDeleteSnapshot = "charterjournal.delete_snapshot"

	spanAttrTable       = "db.table"
	spanAttrRecordCount = "journal.record_count"

	labelOperation = "operation"
	labelStatus    = "status"
	statusSuccess  = "success"
	statusError    = "error"
)

type (
	sqlQueryString    = string
	rowsAffectedInt64 = int64
	queryDuration     = time.Duration
)

// Journal is the Postgres-backed store for charter events.
//
// Records are appended with an optimistic first-committer-wins guard: the insert
// only happens when the stream described by the charterstore.Scope still has the
// expected maximum sequence number. It leverages a database adapter and supports
// customizable logging, metrics, tracing, and table configuration.
type Journal struct {
	db                adapters.DBAdapter
	journalTableName  string
	snapshotTableName string
	logger            charterstore.Logger
	contextualLogger  charterstore.ContextualLogger
	metrics           charterstore.MetricsCollector
	tracing           charterstore.TracingCollector
}

// Option defines a functional option for configuring a Journal.
type Option func(*Journal) error

// WithTableName sets the journal table name.
func WithTableName(tableName string) Option {
	return func(j *Journal) error {
		if tableName == "" {
			return charterstore.ErrEmptyTableNameSupplied
		}

		j.journalTableName = tableName

		return nil
	}
}

// WithSnapshotTableName sets the snapshot table name.
func WithSnapshotTableName(tableName string) Option {
	return func(j *Journal) error {
		if tableName == "" {
			return charterstore.ErrEmptyTableNameSupplied
		}

		j.snapshotTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the Journal.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Info level: Record counts, durations, sequence conflicts (production-safe)
// Warn level: Non-critical issues like cleanup failures
// Error level: Critical failures that cause operation failures.
func WithLogger(logger charterstore.Logger) Option {
	return func(j *Journal) error {
		j.logger = logger
		return nil
	}
}

// WithContextualLogger sets a context-aware logger which is preferred over the
// plain logger when both are configured, enabling trace correlation.
func WithContextualLogger(logger charterstore.ContextualLogger) Option {
	return func(j *Journal) error {
		j.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Journal.
// When the collector also implements charterstore.ContextualMetricsCollector the
// context-aware methods are used.
func WithMetrics(collector charterstore.MetricsCollector) Option {
	return func(j *Journal) error {
		j.metrics = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Journal.
func WithTracing(collector charterstore.TracingCollector) Option {
	return func(j *Journal) error {
		j.tracing = collector
		return nil
	}
}

type queryResultRow struct {
	eventType         string
	payload           []byte
	metadata          []byte
	occurredAt        time.Time
	maxSequenceNumber charterstore.MaxSequenceUint
}

// NewJournalFromPGXPool creates a new Journal using a pgx Pool with optional configuration.
func NewJournalFromPGXPool(db *pgxpool.Pool, options ...Option) (Journal, error) {
	if db == nil {
		return Journal{}, charterstore.ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewPGXAdapter(db), options...)
}

// NewJournalFromPGXPoolAndReplica creates a new Journal using a primary pgx Pool and a
// read replica Pool. Reads go to the replica only when the context allows eventual
// consistency, see charterstore.WithEventualConsistency.
func NewJournalFromPGXPoolAndReplica(db *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (Journal, error) {
	if db == nil || replica == nil {
		return Journal{}, charterstore.ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewPGXAdapterWithReplica(db, replica), options...)
}

// NewJournalFromSQLDB creates a new Journal using a sql.DB with optional configuration.
func NewJournalFromSQLDB(db *sql.DB, options ...Option) (Journal, error) {
	if db == nil {
		return Journal{}, charterstore.ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewSQLAdapter(db), options...)
}

// NewJournalFromSQLX creates a new Journal using a sqlx.DB with optional configuration.
func NewJournalFromSQLX(db *sqlx.DB, options ...Option) (Journal, error) {
	if db == nil {
		return Journal{}, charterstore.ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewSQLXAdapter(db), options...)
}

func newJournal(db adapters.DBAdapter, options ...Option) (Journal, error) {
	j := Journal{
		db:                db,
		journalTableName:  defaultJournalTableName,
		snapshotTableName: defaultSnapshotTableName,
	}

	for _, option := range options {
		if err := option(&j); err != nil {
			return Journal{}, err
		}
	}

	return j, nil
}

// Query retrieves records from the journal based on the provided charterstore.Scope
// and returns them as charterstore.Records as well as the MaxSequenceUint for this
// dynamic charter stream at the time of the query.
func (j Journal) Query(ctx context.Context, scope charterstore.Scope) (
	charterstore.Records,
	charterstore.MaxSequenceUint,
	error,
) {

	var empty charterstore.Records

	ctx, span := j.startSpan(ctx, spanQuery, map[string]string{spanAttrTable: j.journalTableName})

	sqlQuery, buildQueryErr := j.buildSelectQuery(scope)
	if buildQueryErr != nil {
		j.logError(ctx, logMsgBuildSelectQueryFailed, logAttrError, buildQueryErr.Error())
		j.finishSpan(span, statusError, nil)

		return empty, 0, buildQueryErr
	}

	rows, duration, queryErr := j.executeQuery(ctx, sqlQuery)
	if queryErr != nil {
		j.recordOperationMetrics(ctx, metricQueryDuration, duration, logActionQuery, statusError)
		j.finishSpan(span, statusError, nil)

		return empty, 0, queryErr
	}
	defer j.closeRows(ctx, rows)

	recordStream, maxSequenceNumber, scanErr := j.processQueryResults(ctx, rows)
	if scanErr != nil {
		j.recordOperationMetrics(ctx, metricQueryDuration, duration, logActionQuery, statusError)
		j.finishSpan(span, statusError, nil)

		return empty, 0, scanErr
	}

	j.logOperation(ctx,
		logMsgQueryCompleted,
		logAttrRecordCount, len(recordStream),
		logAttrDurationMS, j.durationToMilliseconds(duration))

	j.recordOperationMetrics(ctx, metricQueryDuration, duration, logActionQuery, statusSuccess)
	j.finishSpan(span, statusSuccess, map[string]string{spanAttrRecordCount: fmt.Sprintf("%d", len(recordStream))})

	return recordStream, maxSequenceNumber, nil
}

// executeQuery executes the SQL query and returns rows with timing information.
func (j Journal) executeQuery(ctx context.Context, sqlQuery string) (
	adapters.DBRows,
	time.Duration,
	error,
) {

	start := time.Now()
	rows, queryErr := j.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	j.logQueryWithDuration(ctx, sqlQuery, logActionQuery, duration)

	if queryErr != nil {
		j.logError(ctx, logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)

		return nil, duration, errors.Join(charterstore.ErrQueryingRecordsFailed, queryErr)
	}

	return rows, duration, nil
}

// closeRows safely closes database rows and logs any errors.
func (j Journal) closeRows(ctx context.Context, rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		j.logWarn(ctx, logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

// processQueryResults processes database rows and converts them to journal records.
func (j Journal) processQueryResults(ctx context.Context, rows adapters.DBRows) (
	charterstore.Records,
	charterstore.MaxSequenceUint,
	error,
) {

	var empty charterstore.Records
	result := queryResultRow{}
	recordStream := make(charterstore.Records, 0)
	maxSequenceNumber := charterstore.MaxSequenceUint(0)

	for rows.Next() {
		rowScanErr := rows.Scan(&result.eventType, &result.occurredAt, &result.payload, &result.metadata, &result.maxSequenceNumber)
		if rowScanErr != nil {
			j.logError(ctx, logMsgScanRowFailed, logAttrError, rowScanErr.Error())

			return empty, 0, errors.Join(charterstore.ErrScanningDBRowFailed, rowScanErr)
		}

		record, buildRecordErr := charterstore.BuildRecord(result.eventType, result.occurredAt, result.payload, result.metadata)
		if buildRecordErr != nil {
			j.logError(ctx, logMsgBuildRecordFailed, logAttrError, buildRecordErr.Error(), logAttrEventType, result.eventType)

			return empty, 0, errors.Join(charterstore.ErrBuildingRecordFailed, buildRecordErr)
		}

		recordStream = append(recordStream, record)
		maxSequenceNumber = result.maxSequenceNumber
	}

	return recordStream, maxSequenceNumber, nil
}

// Append attempts to append one or multiple charterstore.Record(s) onto the journal
// respecting the sequence guard for this dynamic charter stream based on the provided
// charterstore.Scope and the expected MaxSequenceUint.
//
// The provided Scope should be the same as the one used for the Query before making
// the business decisions.
//
// The insert query to append multiple records atomically is heavier than the one built
// to append a single record. One command should typically only produce one event.
// Only supply multiple records if the operation genuinely has to commit them together!
func (j Journal) Append(
	ctx context.Context,
	scope charterstore.Scope,
	expectedMaxSequenceNumber charterstore.MaxSequenceUint,
	record charterstore.Record,
	additionalRecords ...charterstore.Record,
) error {

	allRecords := charterstore.Records{record}
	allRecords = append(allRecords, additionalRecords...)

	ctx, span := j.startSpan(ctx, spanAppend, map[string]string{
		spanAttrTable:       j.journalTableName,
		spanAttrRecordCount: fmt.Sprintf("%d", len(allRecords)),
	})

	sqlQuery, buildQueryErr := j.buildAppendQuery(ctx, allRecords, scope, expectedMaxSequenceNumber)
	if buildQueryErr != nil {
		j.finishSpan(span, statusError, nil)

		return buildQueryErr
	}

	rowsAffected, duration, execErr := j.executeAppendQuery(ctx, sqlQuery)
	if execErr != nil {
		j.recordOperationMetrics(ctx, metricAppendDuration, duration, logActionAppend, statusError)
		j.finishSpan(span, statusError, nil)

		return execErr
	}

	if err := j.validateAppendResult(ctx, rowsAffected, len(allRecords), expectedMaxSequenceNumber); err != nil {
		j.recordOperationMetrics(ctx, metricAppendDuration, duration, logActionAppend, statusError)
		j.finishSpan(span, statusError, nil)

		return err
	}

	j.logOperation(ctx,
		logMsgRecordsAppended,
		logAttrRecordCount, len(allRecords),
		logAttrDurationMS, j.durationToMilliseconds(duration),
	)

	j.recordOperationMetrics(ctx, metricAppendDuration, duration, logActionAppend, statusSuccess)
	j.finishSpan(span, statusSuccess, nil)

	return nil
}

// buildAppendQuery builds the appropriate SQL query for single or multiple records.
func (j Journal) buildAppendQuery(
	ctx context.Context,
	allRecords charterstore.Records,
	scope charterstore.Scope,
	expectedMaxSequenceNumber charterstore.MaxSequenceUint,
) (sqlQueryString, error) {

	var sqlQuery sqlQueryString
	var buildQueryErr error

	switch len(allRecords) {
	case 1:
		sqlQuery, buildQueryErr = j.buildInsertQueryForSingleRecord(ctx, allRecords[0], scope, expectedMaxSequenceNumber)

	default:
		sqlQuery, buildQueryErr = j.buildInsertQueryForMultipleRecords(ctx, allRecords, scope, expectedMaxSequenceNumber)
	}

	if buildQueryErr != nil {
		j.logError(ctx, logMsgBuildInsertQueryFailed, logAttrError, buildQueryErr.Error(), logAttrRecordCount, len(allRecords))

		return "", buildQueryErr
	}

	return sqlQuery, nil
}

// executeAppendQuery executes the SQL append query and returns rows affected and duration.
func (j Journal) executeAppendQuery(ctx context.Context, sqlQuery string) (
	rowsAffectedInt64,
	queryDuration,
	error,
) {

	start := time.Now()
	tag, execErr := j.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	j.logQueryWithDuration(ctx, sqlQuery, logActionAppend, duration)

	if execErr != nil {
		j.logError(ctx, logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)

		return 0, duration, errors.Join(charterstore.ErrAppendingRecordsFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := tag.RowsAffected()
	if rowsAffectedErr != nil {
		j.logError(ctx, logMsgRowsAffectedFailed, logAttrError, rowsAffectedErr.Error())

		return 0, duration, errors.Join(charterstore.ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	return rowsAffected, duration, nil
}

// validateAppendResult checks if the append operation was successful and detects sequence conflicts.
func (j Journal) validateAppendResult(
	ctx context.Context,
	rowsAffected int64,
	expectedRecordCount int,
	expectedMaxSequenceNumber charterstore.MaxSequenceUint,
) error {

	if rowsAffected < int64(expectedRecordCount) {
		j.logOperation(ctx,
			logMsgSequenceConflict,
			logAttrExpectedRecords, expectedRecordCount,
			logAttrRowsAffected, rowsAffected,
			logAttrExpectedSequence, expectedMaxSequenceNumber,
		)

		j.incrementCounter(ctx, metricSequenceConflictTotal, map[string]string{labelOperation: logActionAppend})

		return charterstore.ErrSequenceConflict
	}

	return nil
}

// SaveSnapshot stores a projection snapshot, replacing any existing snapshot for the
// same projection type and scope hash.
func (j Journal) SaveSnapshot(ctx context.Context, snapshot charterstore.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return errors.Join(charterstore.ErrSavingSnapshotFailed, err)
	}

	ctx, span := j.startSpan(ctx, spanSaveSnapshot, map[string]string{spanAttrTable: j.snapshotTableName})

	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(j.snapshotTableName).
		Rows(goqu.Record{
			colProjectionType: snapshot.ProjectionType,
			colScopeHash:      snapshot.ScopeHash,
			colSequenceNumber: snapshot.SequenceNumber,
			colData:           goqu.L(castJsonb, string(snapshot.Data)),
			colCreatedAt:      snapshot.CreatedAt,
		}).
		OnConflict(goqu.DoUpdate(snapshotConflictTarget, goqu.Record{
			colSequenceNumber: snapshot.SequenceNumber,
			colData:           goqu.L(castJsonb, string(snapshot.Data)),
			colCreatedAt:      snapshot.CreatedAt,
		}))

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		j.finishSpan(span, statusError, nil)

		return errors.Join(charterstore.ErrSavingSnapshotFailed, charterstore.ErrBuildingQueryFailed, toSQLErr)
	}

	start := time.Now()
	_, execErr := j.db.Exec(ctx, sqlQuery)
	j.logQueryWithDuration(ctx, sqlQuery, logActionSaveSnapshot, time.Since(start))

	if execErr != nil {
		j.logError(ctx, logMsgSnapshotSaveFailed, logAttrError, execErr.Error(), logAttrProjectionType, snapshot.ProjectionType)
		j.finishSpan(span, statusError, nil)

		return errors.Join(charterstore.ErrSavingSnapshotFailed, execErr)
	}

	j.finishSpan(span, statusSuccess, nil)

	return nil
}

// LoadSnapshot retrieves the snapshot for the given projection type and scope hash.
// It returns nil without error when no snapshot exists.
func (j Journal) LoadSnapshot(ctx context.Context, projectionType string, scopeHash string) (
	*charterstore.Snapshot,
	error,
) {

	ctx, span := j.startSpan(ctx, spanLoadSnapshot, map[string]string{spanAttrTable: j.snapshotTableName})

	selectStmt := goqu.Dialect(dialectPostgres).
		From(j.snapshotTableName).
		Select(colSequenceNumber, colData, colCreatedAt).
		Where(
			goqu.C(colProjectionType).Eq(projectionType),
			goqu.C(colScopeHash).Eq(scopeHash),
		)

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		j.finishSpan(span, statusError, nil)

		return nil, errors.Join(charterstore.ErrLoadingSnapshotFailed, charterstore.ErrBuildingQueryFailed, toSQLErr)
	}

	start := time.Now()
	rows, queryErr := j.db.Query(ctx, sqlQuery)
	j.logQueryWithDuration(ctx, sqlQuery, logActionLoadSnapshot, time.Since(start))

	if queryErr != nil {
		j.logError(ctx, logMsgSnapshotLoadFailed, logAttrError, queryErr.Error(), logAttrProjectionType, projectionType)
		j.finishSpan(span, statusError, nil)

		return nil, errors.Join(charterstore.ErrLoadingSnapshotFailed, queryErr)
	}
	defer j.closeRows(ctx, rows)

	if !rows.Next() {
		j.finishSpan(span, statusSuccess, nil)

		return nil, nil
	}

	snapshot := charterstore.Snapshot{
		ProjectionType: projectionType,
		ScopeHash:      scopeHash,
	}

	if scanErr := rows.Scan(&snapshot.SequenceNumber, &snapshot.Data, &snapshot.CreatedAt); scanErr != nil {
		j.logError(ctx, logMsgScanRowFailed, logAttrError, scanErr.Error())
		j.finishSpan(span, statusError, nil)

		return nil, errors.Join(charterstore.ErrLoadingSnapshotFailed, charterstore.ErrScanningDBRowFailed, scanErr)
	}

	j.finishSpan(span, statusSuccess, nil)

	return &snapshot, nil
}

// DeleteSnapshot removes the snapshot for the given projection type and scope hash.
// Deleting a snapshot that does not exist is not an error.
func (j Journal) DeleteSnapshot(ctx context.Context, projectionType string, scopeHash string) error {
	ctx, span := j.startSpan(ctx, spanDeleteSnapshot, map[string]string{spanAttrTable: j.snapshotTableName})

	deleteStmt := goqu.Dialect(dialectPostgres).
		Delete(j.snapshotTableName).
		Where(
			goqu.C(colProjectionType).Eq(projectionType),
			goqu.C(colScopeHash).Eq(scopeHash),
		)

	sqlQuery, _, toSQLErr := deleteStmt.ToSQL()
	if toSQLErr != nil {
		j.finishSpan(span, statusError, nil)

		return errors.Join(charterstore.ErrDeletingSnapshotFailed, charterstore.ErrBuildingQueryFailed, toSQLErr)
	}

	start := time.Now()
	_, execErr := j.db.Exec(ctx, sqlQuery)
	j.logQueryWithDuration(ctx, sqlQuery, logActionDeleteSnapshot, time.Since(start))

	if execErr != nil {
		j.logError(ctx, logMsgSnapshotDeleteFailed, logAttrError, execErr.Error(), logAttrProjectionType, projectionType)
		j.finishSpan(span, statusError, nil)

		return errors.Join(charterstore.ErrDeletingSnapshotFailed, execErr)
	}

	j.finishSpan(span, statusSuccess, nil)

	return nil
}

func (j Journal) buildSelectQuery(scope charterstore.Scope) (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(j.journalTableName).
		Select(colEventType, colOccurredAt, colPayload, colMetadata, colSequenceNumber).
		Order(goqu.I(colSequenceNumber).Asc())

	selectStmt = j.addWhereClause(scope, selectStmt)

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(charterstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (j Journal) buildInsertQueryForSingleRecord(
	ctx context.Context,
	record charterstore.Record,
	scope charterstore.Scope,
	expectedMaxSequenceNumber charterstore.MaxSequenceUint,
) (sqlQueryString, error) {

	builder := goqu.Dialect(dialectPostgres)

	// Define the subquery for the CTE
	cteStmt := builder.
		From(j.journalTableName).
		Select(goqu.MAX(colSequenceNumber).As(aliasMaxSeq))

	cteStmt = j.addWhereClause(scope, cteStmt)

	// Define the SELECT for the INSERT
	selectStmt := builder.
		From(cteContext).
		Select(goqu.V(record.EventType), goqu.V(record.OccurredAt), goqu.V(record.PayloadJSON), goqu.V(record.MetadataJSON)).
		Where(goqu.COALESCE(goqu.C(aliasMaxSeq), 0).Eq(goqu.V(expectedMaxSequenceNumber)))

	// Finalize the full INSERT query
	insertStmt := builder.
		Insert(j.journalTableName).
		Cols(colEventType, colOccurredAt, colPayload, colMetadata).
		FromQuery(selectStmt).
		With(cteContext, cteStmt)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		j.logError(ctx, logMsgSingleRecordSQLFailed, logAttrError, toSQLErr.Error(), logAttrEventType, record.EventType)

		return "", errors.Join(charterstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (j Journal) buildInsertQueryForMultipleRecords(
	ctx context.Context,
	records charterstore.Records,
	scope charterstore.Scope,
	expectedMaxSequenceNumber charterstore.MaxSequenceUint,
) (sqlQueryString, error) {

	builder := goqu.Dialect(dialectPostgres)

	// Define the subquery for the CTE
	cteStmt := builder.
		From(j.journalTableName).
		Select(goqu.MAX(colSequenceNumber).As(aliasMaxSeq))

	cteStmt = j.addWhereClause(scope, cteStmt)

	// Create individual SELECT statements for each record
	unionStatements := make([]*goqu.SelectDataset, len(records))
	for i, record := range records {
		unionStatements[i] = builder.
			Select(
				goqu.L(castText, record.EventType).As(colEventType),
				goqu.L(castTimestamp, record.OccurredAt).As(colOccurredAt),
				goqu.L(castJsonb, record.PayloadJSON).As(colPayload),
				goqu.L(castJsonb, record.MetadataJSON).As(colMetadata),
			)
	}

	// Combine all SELECT statements with UNION ALL
	valuesStmt := unionStatements[0]
	for i := 1; i < len(unionStatements); i++ {
		valuesStmt = valuesStmt.UnionAll(unionStatements[i])
	}

	// Finalize the full INSERT query
	valsEventType := fmt.Sprintf("%s.%s", cteVals, colEventType)
	valsOccurredAt := fmt.Sprintf("%s.%s", cteVals, colOccurredAt)
	valsPayload := fmt.Sprintf("%s.%s", cteVals, colPayload)
	valsMetadata := fmt.Sprintf("%s.%s", cteVals, colMetadata)

	insertStmt := builder.
		Insert(j.journalTableName).
		Cols(colEventType, colOccurredAt, colPayload, colMetadata).
		With(cteContext, cteStmt).
		With(cteVals, valuesStmt).
		FromQuery(
			builder.From(cteContext, cteVals).
				Select(valsEventType, valsOccurredAt, valsPayload, valsMetadata).
				Where(goqu.COALESCE(goqu.C(aliasMaxSeq), 0).Eq(goqu.V(expectedMaxSequenceNumber))),
		)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		j.logError(ctx, logMsgMultiRecordSQLFailed, logAttrError, toSQLErr.Error(), logAttrRecordCount, len(records))

		return "", errors.Join(charterstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (j Journal) addWhereClause(scope charterstore.Scope, selectStmt *goqu.SelectDataset) *goqu.SelectDataset {
	clauseExpressions := make([]goqu.Expression, 0)

	for _, clause := range scope.Clauses() {
		eventTypeExpressions := make([]goqu.Expression, 0)
		tagExpressions := make([]goqu.Expression, 0)

		for _, eventType := range clause.EventTypes() {
			eventTypeExpressions = append(
				eventTypeExpressions,
				goqu.Ex{colEventType: eventType},
			)
		}

		// eventTypes must always be filtered with OR ;-)
		eventTypesExpressionList := goqu.Or(eventTypeExpressions...)

		for _, tag := range clause.Tags() {
			tagExpressions = append(
				tagExpressions,
				goqu.L(fmt.Sprintf(`%s @> '{"%s": "%s"}'`, colPayload, tag.Key(), tag.Val())),
			)
		}

		var tagsExpressionList exp.ExpressionList

		if clause.AllTagsMustMatch() {
			tagsExpressionList = goqu.And(tagExpressions...)
		} else {
			tagsExpressionList = goqu.Or(tagExpressions...)
		}

		clauseExpressions = append(
			clauseExpressions,
			goqu.And(eventTypesExpressionList, tagsExpressionList),
		)
	}

	boundsExpressions := make([]goqu.Expression, 0)

	if !scope.OccurredFrom().IsZero() {
		boundsExpressions = append(
			boundsExpressions,
			goqu.C(colOccurredAt).Gte(scope.OccurredFrom()),
		)
	}

	if !scope.OccurredUntil().IsZero() {
		boundsExpressions = append(
			boundsExpressions,
			goqu.C(colOccurredAt).Lte(scope.OccurredUntil()),
		)
	}

	if scope.SequenceHigherThan() > 0 {
		boundsExpressions = append(
			boundsExpressions,
			goqu.C(colSequenceNumber).Gt(scope.SequenceHigherThan()),
		)
	}

	selectStmt = selectStmt.Where(
		goqu.And(
			goqu.Or(clauseExpressions...),
			goqu.And(boundsExpressions...),
		),
	)

	return selectStmt
}

// logQueryWithDuration logs SQL queries with execution time at debug level if a logger is configured.
func (j Journal) logQueryWithDuration(
	ctx context.Context,
	sqlQuery string,
	action string,
	duration time.Duration,
) {

	if j.contextualLogger != nil {
		j.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+action, logAttrDurationMS, j.durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	} else if j.logger != nil {
		j.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, j.durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if a logger is configured.
func (j Journal) logOperation(ctx context.Context, action string, args ...any) {
	if j.contextualLogger != nil {
		j.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	} else if j.logger != nil {
		j.logger.Info(logMsgOperation+action, args...)
	}
}

func (j Journal) logWarn(ctx context.Context, msg string, args ...any) {
	if j.contextualLogger != nil {
		j.contextualLogger.WarnContext(ctx, msg, args...)
	} else if j.logger != nil {
		j.logger.Warn(msg, args...)
	}
}

func (j Journal) logError(ctx context.Context, msg string, args ...any) {
	if j.contextualLogger != nil {
		j.contextualLogger.ErrorContext(ctx, msg, args...)
	} else if j.logger != nil {
		j.logger.Error(msg, args...)
	}
}

// recordOperationMetrics records the duration histogram for an operation if a collector is configured.
func (j Journal) recordOperationMetrics(
	ctx context.Context,
	metricName string,
	duration time.Duration,
	operation string,
	status string,
) {

	if j.metrics == nil {
		return
	}

	labels := map[string]string{labelOperation: operation, labelStatus: status}

	if contextual, ok := j.metrics.(charterstore.ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, metricName, duration, labels)
		return
	}

	j.metrics.RecordDuration(metricName, duration, labels)
}

// incrementCounter increments a counter metric if a collector is configured.
func (j Journal) incrementCounter(ctx context.Context, metricName string, labels map[string]string) {
	if j.metrics == nil {
		return
	}

	if contextual, ok := j.metrics.(charterstore.ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, metricName, labels)
		return
	}

	j.metrics.IncrementCounter(metricName, labels)
}

// startSpan starts a tracing span if a tracing collector is configured.
func (j Journal) startSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, charterstore.SpanContext) {
	if j.tracing == nil {
		return ctx, nil
	}

	return j.tracing.StartSpan(ctx, name, attrs)
}

// finishSpan finishes a tracing span if one was started.
func (j Journal) finishSpan(span charterstore.SpanContext, status string, attrs map[string]string) {
	if j.tracing == nil || span == nil {
		return
	}

	j.tracing.FinishSpan(span, status, attrs)
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (j Journal) durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
