package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yacinebrahmi/gestock-api/internal/application/dto"
	"github.com/yacinebrahmi/gestock-api/internal/domain"
	"github.com/yacinebrahmi/gestock-api/internal/domain/entity"
	"github.com/yacinebrahmi/gestock-api/internal/domain/repository"
	"github.com/yacinebrahmi/gestock-api/pkg/jwt"
	"github.com/yacinebrahmi/gestock-api/pkg/logger"
)

// JWTConfig paramètres de génération des jetons.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase cas d'usage d'authentification : création de compte et connexion.
// Chaque tentative de connexion, réussie ou non, est journalisée.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	journalRepo repository.JournalRepository
	jwtCfg      JWTConfig
	log         *logger.Logger
}

// NewAuthUseCase construit le cas d'usage.
func NewAuthUseCase(userRepo repository.UserRepository, journalRepo repository.JournalRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, journalRepo: journalRepo, jwtCfg: jwtCfg, log: log}
}

// Register crée un utilisateur : hache le mot de passe avec bcrypt et persiste.
// Retourne ErrMatriculeDejaUtilise si le matricule existe déjà.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Matricule == "" || in.Password == "" || in.Service == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByMatricule(in.Matricule)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrMatriculeDejaUtilise
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleConsultation
	}
	nom := in.Nom
	if nom == "" {
		nom = in.Matricule
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Matricule:    in.Matricule,
		Nom:          nom,
		PasswordHash: string(hash),
		Service:      in.Service,
		Role:         role,
		Statut:       "actif",
		DateCreation: time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login vérifie matricule/mot de passe, journalise la tentative et génère le JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByMatricule(in.Matricule)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.journaliseConnexion(in.Matricule, "tentative de connexion avec un matricule inconnu")
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.journaliseConnexion(user.Matricule, "tentative de connexion avec un mot de passe erroné")
		return nil, domain.ErrUnauthorized
	}
	if user.Statut != "actif" {
		uc.journaliseConnexion(user.Matricule, "tentative de connexion sur un compte suspendu")
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Matricule, user.Service, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.journaliseConnexion(user.Matricule, "connexion réussie")
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// journaliseConnexion enregistre la tentative dans le journal ; un échec d'écriture
// ne bloque jamais la connexion, il est seulement tracé.
func (uc *AuthUseCase) journaliseConnexion(matricule, action string) {
	entry := &entity.JournalEntry{
		ID:          uuid.New().String(),
		Categorie:   entity.JournalConnexion,
		Action:      action,
		Utilisateur: matricule,
		DateAction:  time.Now(),
	}
	if err := uc.journalRepo.Append(entry); err != nil {
		uc.log.Warn().Err(err).Str("matricule", matricule).Msg("journal de connexion non enregistré")
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Matricule:    u.Matricule,
		Nom:          u.Nom,
		Service:      u.Service,
		Role:         u.Role,
		Statut:       u.Statut,
		DateCreation: u.DateCreation,
	}
}
