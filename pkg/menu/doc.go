/*
Package menu holds the shared navigation registry and the registrar that
keeps it synchronized with a classification result.

The Registry is an explicitly owned object passed by reference: created at
application start, mutated only through Add and Remove, torn down with the
application. Records are keyed by the declaring element's name and organized
hierarchically by the category path they were registered under.

The Registrar observes a list of classified entries and applies an
incremental diff against its previous sync: stale keys are removed first,
then every current entry is upserted, so metadata for surviving keys is
replaced without a remove-then-reinsert round trip.
*/
package menu
