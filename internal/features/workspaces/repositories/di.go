package workspaces_repositories

var workspaceRepository = &WorkspaceRepository{}
var membershipRepository = &MembershipRepository{}
var socialAccountLinkRepository = &SocialAccountLinkRepository{}

func GetWorkspaceRepository() *WorkspaceRepository {
	return workspaceRepository
}

func GetMembershipRepository() *MembershipRepository {
	return membershipRepository
}

func GetSocialAccountLinkRepository() *SocialAccountLinkRepository {
	return socialAccountLinkRepository
}
