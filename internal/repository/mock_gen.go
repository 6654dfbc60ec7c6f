// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -typed -source=./club.go -destination=../mocks/mock_club_repository.go -package=mocks ClubRepositoryIface
//go:generate mockgen -typed -source=./regional.go -destination=../mocks/mock_regional_repository.go -package=mocks RegionalRepositoryIface
//go:generate mockgen -typed -source=./membership.go -destination=../mocks/mock_membership_repository.go -package=mocks MembershipRepositoryIface
//go:generate mockgen -typed -source=./exam.go -destination=../mocks/mock_exam_repository.go -package=mocks ExamRepositoryIface
//go:generate mockgen -typed -source=./audit_log.go -destination=../mocks/mock_audit_log_repository.go -package=mocks AuditLogRepositoryIface
